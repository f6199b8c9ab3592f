package cmd

import (
	"sort"

	"github.com/mj1618/a11y-bridge/internal/model"
	"github.com/mj1618/a11y-bridge/internal/output"
	"github.com/spf13/cobra"
)

// EventsResult lists the event and notification names the bridges accept.
type EventsResult struct {
	Android []AndroidEventEntry `yaml:"android,omitempty" json:"android,omitempty"`
	IOS     []NotificationEntry `yaml:"ios,omitempty"     json:"ios,omitempty"`
}

// AndroidEventEntry is one sendAccessibilityEvent name.
type AndroidEventEntry struct {
	Name string `yaml:"name" json:"name"`
	Type int    `yaml:"type" json:"type"`
}

// NotificationEntry is one postNotification type.
type NotificationEntry struct {
	Type   string `yaml:"type"   json:"type"`
	Native string `yaml:"native" json:"native"`
}

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List accessibility event and notification names",
	Long:  "List the names accepted by send-event on Android and post on iOS, with their native values.",
	Args:  cobra.NoArgs,
	RunE:  runEvents,
}

func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.Flags().String("platform", "", "Only list one platform: android, ios")
}

func runEvents(cmd *cobra.Command, args []string) error {
	p, _ := cmd.Flags().GetString("platform")
	var res EventsResult
	if p == "" || p == "android" {
		for _, name := range model.AndroidEventNames() {
			res.Android = append(res.Android, AndroidEventEntry{Name: name, Type: model.AndroidEvents[name]})
		}
	}
	if p == "" || p == "ios" {
		for n, native := range model.IOSNotifications {
			res.IOS = append(res.IOS, NotificationEntry{Type: string(n), Native: native})
		}
		sort.Slice(res.IOS, func(i, j int) bool { return res.IOS[i].Type < res.IOS[j].Type })
	}
	return output.Fprint(cmd.OutOrStdout(), res)
}
