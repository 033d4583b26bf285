package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"boardquest/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	var video string
	var videoURL string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change host settings",
		Long:  "Show or change the background-video settings. Enabling the video requires the shop unlock.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if cmd.Flags().Changed("video-url") {
				svc.SetVideoURL(ctx, videoURL)
			}
			if cmd.Flags().Changed("video") {
				switch video {
				case "on":
					if !svc.SetVideoEnabled(ctx, true) {
						fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconLock+" Background video is locked; buy 'video_unlock' first"))
					}
				case "off":
					svc.SetVideoEnabled(ctx, false)
				default:
					return fmt.Errorf("--video must be on or off, got %q", video)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSettings, "Settings"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Background video", onOff(svc.VideoEnabled())))
			url := svc.VideoURL()
			if url == "" {
				url = ui.Muted.Render("(unset)")
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Video URL", url))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Storage pinned", onOff(svc.PersistGranted())))
			return nil
		},
	}

	cmd.Flags().StringVar(&video, "video", "", "Turn background video on|off")
	cmd.Flags().StringVar(&videoURL, "video-url", "", "Background video URL")

	return cmd
}

func onOff(v bool) string {
	if v {
		return ui.Good.Render("on")
	}
	return ui.Muted.Render("off")
}
