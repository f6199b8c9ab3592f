package server

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/observable"
	"github.com/mj1618/a11y-bridge/internal/platform"
	"github.com/mj1618/a11y-bridge/internal/platform/android"
	"github.com/mj1618/a11y-bridge/internal/scenario"
	"gopkg.in/yaml.v3"
)

// toText serializes a result to YAML for an MCP response.
func toText(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("ok: false\nerror: %s", err)
	}
	return string(b)
}

func errorResult(action string, err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(toText(scenario.StepResult{Action: action, Error: err.Error()}))
}

func (s *Server) handleSimulate(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sc, err := scenario.Parse([]byte(scenario.StringParam(params, "scenario", "")))
	if err != nil {
		return errorResult("simulate", err), nil
	}
	res, err := scenario.Run(sc, s.sink)
	if err != nil {
		return errorResult("simulate", err), nil
	}
	if !res.OK {
		return mcp.NewToolResultError(toText(res)), nil
	}
	return mcp.NewToolResultText(toText(res)), nil
}

// FontScaleResult is the output of closest_font_scale.
type FontScaleResult struct {
	Platform   string  `yaml:"platform"   json:"platform"`
	Raw        float64 `yaml:"raw"        json:"raw"`
	Scale      float64 `yaml:"scale"      json:"scale"`
	ExtraSmall bool    `yaml:"extraSmall" json:"extraSmall"`
	ExtraLarge bool    `yaml:"extraLarge" json:"extraLarge"`
}

// FontScaleFor normalizes raw for the platform.
func FontScaleFor(k platform.Kind, raw float64) FontScaleResult {
	valid := observable.AndroidFontScales
	if k == platform.IOS {
		valid = observable.IOSFontScales
	}
	st := observable.NewFontScaleState(observable.ClosestFontScale(raw, valid))
	return FontScaleResult{
		Platform:   string(k),
		Raw:        raw,
		Scale:      st.Scale,
		ExtraSmall: st.ExtraSmall,
		ExtraLarge: st.ExtraLarge,
	}
}

func (s *Server) handleClosestFontScale(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	k, err := platform.ParseKind(scenario.StringParam(params, "platform", "android"))
	if err != nil {
		return errorResult("closest_font_scale", err), nil
	}
	return mcp.NewToolResultText(toText(FontScaleFor(k, scenario.FloatParam(params, "scale", 1)))), nil
}

// TraitsResult is the output of the traits tool.
type TraitsResult struct {
	Mask    uint64   `yaml:"mask"              json:"mask"`
	Traits  []string `yaml:"traits"            json:"traits"`
	Unknown []string `yaml:"unknown,omitempty" json:"unknown,omitempty"`
}

// EncodeTraits builds the full iOS mask for a trait list, role and state.
func EncodeTraits(traits string, role model.Role, state model.State) TraitsResult {
	parsed, unknown := model.ParseTraits(traits)
	roleBits, _ := model.RoleTraits(role)
	mask := roleBits | model.TraitsMask(parsed) | model.StateTraits(role, state)
	return TraitsResult{
		Mask:    mask,
		Traits:  model.TraitNames(model.MaskTraits(mask)),
		Unknown: unknown,
	}
}

func (s *Server) handleTraits(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	if _, ok := params["mask"]; ok {
		mask := uint64(scenario.IntParam(params, "mask", 0))
		return mcp.NewToolResultText(toText(TraitsResult{
			Mask:   mask,
			Traits: model.TraitNames(model.MaskTraits(mask)),
		})), nil
	}
	role, ok := model.ParseRole(scenario.StringParam(params, "role", ""))
	if !ok {
		return errorResult("traits", fmt.Errorf("unknown role %q", params["role"])), nil
	}
	state, ok := model.ParseState(scenario.StringParam(params, "state", ""))
	if !ok {
		return errorResult("traits", fmt.Errorf("unknown state %q", params["state"])), nil
	}
	return mcp.NewToolResultText(toText(EncodeTraits(scenario.StringParam(params, "traits", ""), role, state))), nil
}

func (s *Server) handleDescribe(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	role, ok := model.ParseRole(scenario.StringParam(params, "role", ""))
	if !ok {
		return errorResult("describe", fmt.Errorf("unknown role %q", params["role"])), nil
	}
	desc := android.ComposeDescription(
		scenario.StringParam(params, "label", ""),
		scenario.StringParam(params, "value", ""),
		scenario.StringParam(params, "hint", ""),
		role,
		scenario.IntParam(params, "sdk", scenario.DefaultSDK),
	)
	return mcp.NewToolResultText(toText(map[string]string{"description": desc})), nil
}

func (s *Server) handleSessionStart(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	opts := scenario.Options{
		Platform:    scenario.StringParam(params, "platform", ""),
		SDK:         scenario.IntParam(params, "sdk", 0),
		FontScale:   scenario.FloatParam(params, "font-scale", 0),
		ContentSize: scenario.StringParam(params, "content-size", ""),
		Service:     scenario.BoolParam(params, "service", false),
		Sink:        s.sink,
	}
	if vt := scenario.StringParam(params, "view-types", ""); vt != "" {
		opts.ViewTypes = model.SplitTags(vt)
	}
	id, err := s.sessions.Create(opts)
	if err != nil {
		return errorResult("session_start", err), nil
	}
	return mcp.NewToolResultText(toText(map[string]any{"ok": true, "session": id})), nil
}

func (s *Server) handleSessionStep(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	id := scenario.StringParam(params, "session", "")
	action := strings.TrimSpace(scenario.StringParam(params, "action", ""))
	stepParams := scenario.MapParam(params, "params")
	if stepParams == nil {
		stepParams = map[string]any{}
	}

	var result scenario.StepResult
	err := s.sessions.With(id, func(sess *scenario.Session) error {
		r, err := sess.Step(action, stepParams)
		result = r
		if err == nil && r.Pass != nil && !*r.Pass {
			err = fmt.Errorf("assertion failed: %s", r.Value)
		}
		return err
	})
	if err != nil {
		result.Action = action
		result.Error = err.Error()
		return mcp.NewToolResultError(toText(result)), nil
	}
	result.OK = true
	return mcp.NewToolResultText(toText(result)), nil
}

// SnapshotResult is the output of session_snapshot.
type SnapshotResult struct {
	Platform string           `yaml:"platform"         json:"platform"`
	Views    []model.Snapshot `yaml:"views"            json:"views"`
	Events   []scenario.Event `yaml:"events,omitempty" json:"events,omitempty"`
}

func (s *Server) handleSessionSnapshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := scenario.StringParam(request.GetArguments(), "session", "")
	var res SnapshotResult
	err := s.sessions.With(id, func(sess *scenario.Session) error {
		res = SnapshotResult{
			Platform: string(sess.Kind()),
			Views:    sess.Snapshot(),
			Events:   sess.Events(),
		}
		return nil
	})
	if err != nil {
		return errorResult("session_snapshot", err), nil
	}
	return mcp.NewToolResultText(toText(res)), nil
}

func (s *Server) handleSessionClose(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := scenario.StringParam(request.GetArguments(), "session", "")
	if !s.sessions.Close(id) {
		return errorResult("session_close", fmt.Errorf("unknown or expired session %q", id)), nil
	}
	return mcp.NewToolResultText(toText(map[string]any{"ok": true, "session": id})), nil
}
