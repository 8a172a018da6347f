package main

import "github.com/urfave/cli/v2"

func (s *srv) app() *cli.App {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "devsocial"
	app.Usage = "Developer social network backend"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Value: "config.toml",
			Usage: "Path to the configuration file",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the api server",
			Category:    "Api",
			Description: `The main service with every http api, including the notification stream.`,
		},
		{
			Action:      s.startNotificationProxy,
			Name:        "proxy",
			Usage:       "Start the notification proxy",
			Category:    "Websocket",
			Description: `Holds client websocket connections and receives notifications from the api server over the broker.`,
		},
	}

	return app
}
