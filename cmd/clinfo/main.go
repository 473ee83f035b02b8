package main

import (
	"fmt"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/fxnlabs/gocl/cl"
	"github.com/fxnlabs/gocl/internal/config"
	"github.com/fxnlabs/gocl/internal/logger"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	var cfg *config.Config
	var log *zap.Logger

	app := &cli.App{
		Name:  "clinfo",
		Usage: "Enumerate OpenCL platforms and devices",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Load configuration from `FILE`",
				EnvVars: []string{"GOCL_CONFIG"},
			},
			&cli.StringFlag{
				Name:  "device-type",
				Usage: "Restrict listing to a device type (cpu, gpu, accelerator, all)",
			},
			&cli.BoolFlag{
				Name:  "extensions",
				Usage: "Print the full extension list for each platform and device",
			},
		},
		Before: func(c *cli.Context) error {
			var err error
			cfg, err = config.LoadConfig(c.String("config"))
			if err != nil {
				return err
			}
			log, err = logger.NewCLI(cfg.Logger.Verbosity)
			if err != nil {
				return err
			}
			log = log.Named("clinfo")
			return nil
		},
		Action: func(c *cli.Context) error {
			deviceType := cfg.Device.Type
			if c.IsSet("device-type") {
				deviceType = c.String("device-type")
			}
			return listPlatforms(log, deviceType, c.Bool("extensions"))
		},
	}

	if err := app.Run(os.Args); err != nil {
		if log != nil {
			log.Fatal("failed to run app", zap.Error(err))
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
}

func listPlatforms(log *zap.Logger, deviceType string, showExtensions bool) error {
	banner := figure.NewFigure("clinfo", "", true)
	banner.Print()
	fmt.Println("")

	if !cl.DriverLoaded() {
		log.Warn("OpenCL driver not loaded; rebuild with an OpenCL build tag and install an ICD loader")
		fmt.Println("No OpenCL driver available.")
		return nil
	}

	dt := cl.ParseDeviceType(deviceType)

	platforms, err := cl.GetPlatforms()
	if err != nil {
		return fmt.Errorf("failed to enumerate platforms: %w", err)
	}
	fmt.Printf("Number of platforms: %d\n", len(platforms))

	for i, platform := range platforms {
		fmt.Println("-----------------------------------------------")
		printPlatform(log, i, platform, showExtensions)
		printDevices(log, platform, dt, showExtensions)
	}
	return nil
}

func printPlatform(log *zap.Logger, index int, platform cl.Platform, showExtensions bool) {
	fmt.Printf("Platform %d\n", index)
	printInfo("  Name", platform.Name, log)
	printInfo("  Vendor", platform.Vendor, log)
	printInfo("  Version", platform.Version, log)
	printInfo("  Profile", platform.Profile, log)
	if showExtensions {
		extensions, err := platform.Extensions()
		if err != nil {
			log.Warn("failed to query platform extensions", zap.Error(err))
			return
		}
		fmt.Printf("  Extensions (%d):\n", len(extensions))
		for _, ext := range extensions {
			fmt.Printf("    %s\n", ext)
		}
	}
}

func printDevices(log *zap.Logger, platform cl.Platform, dt cl.DeviceType, showExtensions bool) {
	devices, err := platform.Devices(dt)
	if err != nil {
		log.Warn("failed to enumerate devices", zap.Error(err))
		return
	}
	fmt.Printf("  Number of devices: %d\n", len(devices))

	for i, device := range devices {
		fmt.Printf("  Device %d\n", i)
		printInfo("    Name", device.Name, log)
		printInfo("    Vendor", device.Vendor, log)
		printInfo("    Version", device.Version, log)
		printInfo("    Driver version", device.DriverVersion, log)

		if t, err := device.Type(); err == nil {
			fmt.Printf("    Type: %s\n", t)
		}
		if units, err := device.MaxComputeUnits(); err == nil {
			fmt.Printf("    Max compute units: %d\n", units)
		}
		if wg, err := device.MaxWorkGroupSize(); err == nil {
			fmt.Printf("    Max work group size: %d\n", wg)
		}
		if mem, err := device.GlobalMemSize(); err == nil {
			fmt.Printf("    Global memory: %d MB\n", mem/(1024*1024))
		}
		if available, err := device.Available(); err == nil {
			fmt.Printf("    Available: %t\n", available)
		}
		if showExtensions {
			extensions, err := device.Extensions()
			if err != nil {
				log.Warn("failed to query device extensions", zap.Error(err))
				continue
			}
			fmt.Printf("    Extensions (%d):\n", len(extensions))
			for _, ext := range extensions {
				fmt.Printf("      %s\n", ext)
			}
		}
	}
}

func printInfo(label string, query func() (string, error), log *zap.Logger) {
	value, err := query()
	if err != nil {
		log.Warn("info query failed", zap.String("field", label), zap.Error(err))
		return
	}
	fmt.Printf("%s: %s\n", label, value)
}
