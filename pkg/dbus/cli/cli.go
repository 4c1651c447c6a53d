// Package cli provides the dbus command line tool, a thin wrapper over the
// client library that queries each endpoint and prints the decoded response.
package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"github.com/andiri/dbus-go/pkg/dbus"
)

const (
	inputDateLayout = "020106"
	inputTimeLayout = "1504"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "query",
		Usage: "Query the dBUS web service endpoints",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to an optional YAML config file",
			},
			&cli.StringFlag{
				Name:  "language",
				Usage: "response language (es, eu, en, fr)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "print responses as indented JSON instead of Go values",
			},
		},
		Subcommands: []*cli.Command{
			timesCommand(),
			vehicleCommand(),
			alertsCommand(),
			lineCommand(),
			stopCommand(),
			itineraryCommand(),
			directionCommand(),
		},
	}
}

func newClient(c *cli.Context) (*dbus.Client, error) {
	toolConfig, err := LoadToolConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	return dbus.NewClient(dbus.Config{
		DefaultLanguage: toolConfig.Language,
		ConnectTimeout:  toolConfig.ConnectTimeout(),
		ReadTimeout:     toolConfig.ReadTimeout(),
	})
}

func printResponse(c *cli.Context, response any) error {
	if c.Bool("json") {
		output, err := json.MarshalIndent(response, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))

		return nil
	}

	pretty.Println(response)

	return nil
}

func parseClock(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	return time.Parse(inputTimeLayout, value)
}

func timesCommand() *cli.Command {
	return &cli.Command{
		Name:      "times",
		Usage:     "arrival times at a stop, optionally for a single vehicle",
		ArgsUsage: "<stop code>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "vehicle",
				Usage: "restrict to one vehicle code",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one stop code argument")
			}

			client, err := newClient(c)
			if err != nil {
				return err
			}
			defer client.Close()

			var response *dbus.TiemposParadaResponse
			if vehicle := c.String("vehicle"); vehicle != "" {
				response, err = client.TiemposParadaBus(c.Args().First(), vehicle, c.String("language"))
			} else {
				response, err = client.TiemposParada(c.Args().First(), c.String("language"))
			}
			if err != nil {
				return err
			}

			return printResponse(c, response)
		},
	}
}

func vehicleCommand() *cli.Command {
	return &cli.Command{
		Name:      "vehicle",
		Usage:     "data for a vehicle",
		ArgsUsage: "<vehicle code>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "itinerary",
				Usage: "also request the vehicle's itinerary",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one vehicle code argument")
			}

			client, err := newClient(c)
			if err != nil {
				return err
			}
			defer client.Close()

			response, err := client.DatosVehiculo(c.Args().First(), c.Bool("itinerary"))
			if err != nil {
				return err
			}

			return printResponse(c, response)
		},
	}
}

func alertsCommand() *cli.Command {
	return &cli.Command{
		Name:  "alerts",
		Usage: "current service notices",
		Action: func(c *cli.Context) error {
			client, err := newClient(c)
			if err != nil {
				return err
			}
			defer client.Close()

			response, err := client.Avisos(c.String("language"))
			if err != nil {
				return err
			}

			return printResponse(c, response)
		},
	}
}

func lineCommand() *cli.Command {
	return &cli.Command{
		Name:  "line",
		Usage: "line listings, itineraries, directions and geometry",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list every line",
				Action: func(c *cli.Context) error {
					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					response, err := client.ListadoLineas()
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
			{
				Name:      "itineraries",
				Usage:     "itineraries of a line",
				ArgsUsage: "<line id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "stop",
						Usage: "filter by stop id",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one line id argument")
					}

					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					response, err := client.ItinerariosLinea(c.Args().First(), c.String("stop"), c.String("language"))
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
			{
				Name:      "directions",
				Usage:     "directions of a line",
				ArgsUsage: "<line id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "stop",
						Usage: "filter by stop id",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one line id argument")
					}

					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					response, err := client.SentidosLinea(c.Args().First(), c.String("stop"), c.String("language"))
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
			{
				Name:      "route",
				Usage:     "route geometry of a line",
				ArgsUsage: "<line id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one line id argument")
					}

					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					response, err := client.RecorridoLinea(c.Args().First())
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
		},
	}
}

func stopCommand() *cli.Command {
	return &cli.Command{
		Name:  "stop",
		Usage: "stop based lookups",
		Subcommands: []*cli.Command{
			{
				Name:  "points",
				Usage: "every stop point of the network",
				Action: func(c *cli.Context) error {
					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					response, err := client.PuntosParada()
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
			{
				Name:      "lines",
				Usage:     "lines serving a stop in a time range",
				ArgsUsage: "<stop id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "day-type",
						Value: "H",
						Usage: "schedule day type code",
					},
					&cli.StringFlag{
						Name:  "from",
						Usage: "range start as HHmm (defaults to 0000)",
					},
					&cli.StringFlag{
						Name:  "to",
						Usage: "range end as HHmm (defaults to 2359)",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one stop id argument")
					}

					from, err := parseClock(c.String("from"), time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC))
					if err != nil {
						return err
					}
					to, err := parseClock(c.String("to"), time.Date(0, 1, 1, 23, 59, 0, 0, time.UTC))
					if err != nil {
						return err
					}

					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					response, err := client.LineasParada(c.Args().First(), c.String("day-type"), from, to)
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
			{
				Name:      "departures",
				Usage:     "departures at a stop for an itinerary or a direction",
				ArgsUsage: "<stop id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "itinerary",
						Usage: "itinerary id",
					},
					&cli.StringFlag{
						Name:  "direction",
						Usage: "direction id",
					},
					&cli.StringFlag{
						Name:  "date",
						Usage: "date as ddMMyy (defaults to today)",
					},
					&cli.StringFlag{
						Name:  "time",
						Usage: "time as HHmm (defaults to now)",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one stop id argument")
					}

					itinerary := c.String("itinerary")
					direction := c.String("direction")
					if (itinerary == "") == (direction == "") {
						return fmt.Errorf("exactly one of --itinerary or --direction is required")
					}

					now := time.Now()
					date := now
					if value := c.String("date"); value != "" {
						parsed, err := time.Parse(inputDateLayout, value)
						if err != nil {
							return err
						}
						date = parsed
					}
					clock, err := parseClock(c.String("time"), now)
					if err != nil {
						return err
					}

					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					var response any
					if itinerary != "" {
						response, err = client.ExpedicionesParadaItinerario(itinerary, c.Args().First(), date, clock, c.String("language"))
					} else {
						response, err = client.ExpedicionesParadaSentido(direction, c.Args().First(), date, clock, c.String("language"))
					}
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
		},
	}
}

func itineraryCommand() *cli.Command {
	return &cli.Command{
		Name:  "itinerary",
		Usage: "itinerary based lookups",
		Subcommands: []*cli.Command{
			{
				Name:      "stops",
				Usage:     "ordered stops of an itinerary",
				ArgsUsage: "<itinerary id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one itinerary id argument")
					}

					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					response, err := client.ParadasItinerario(c.Args().First())
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
			{
				Name:      "departures",
				Usage:     "departure times of an itinerary at a stop",
				ArgsUsage: "<itinerary id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "stop",
						Usage:    "stop id",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "day-type",
						Value: "H",
						Usage: "schedule day type code",
					},
					&cli.StringFlag{
						Name:  "from",
						Usage: "range start as HHmm (defaults to 0000)",
					},
					&cli.StringFlag{
						Name:  "to",
						Usage: "range end as HHmm (defaults to 2359)",
					},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one itinerary id argument")
					}

					from, err := parseClock(c.String("from"), time.Date(0, 1, 1, 0, 0, 0, 0, time.UTC))
					if err != nil {
						return err
					}
					to, err := parseClock(c.String("to"), time.Date(0, 1, 1, 23, 59, 0, 0, time.UTC))
					if err != nil {
						return err
					}

					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					response, err := client.ExpedicionesItinerario(c.String("stop"), c.String("day-type"), from, to, c.Args().First())
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
		},
	}
}

func directionCommand() *cli.Command {
	return &cli.Command{
		Name:  "direction",
		Usage: "direction based lookups",
		Subcommands: []*cli.Command{
			{
				Name:      "stops",
				Usage:     "ordered stops of a direction",
				ArgsUsage: "<direction id>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return fmt.Errorf("expected exactly one direction id argument")
					}

					client, err := newClient(c)
					if err != nil {
						return err
					}
					defer client.Close()

					response, err := client.ParadasSentido(c.Args().First())
					if err != nil {
						return err
					}

					return printResponse(c, response)
				},
			},
		},
	}
}
