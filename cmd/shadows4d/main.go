package main

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/lukaszgryglicki/shadows4d/internal/shadows4d"
)

func main() {
	shadows4d.SetupLogging(os.Stderr, os.Getenv("DEBUG") != "")
	shadows4d.PNG = os.Getenv("PNG") != ""
	shadows4d.Watch = os.Getenv("WATCH") != ""
	shadows4d.Dump = os.Getenv("DUMP") != ""
	profile := os.Getenv("PROFILE") != ""
	if profile {
		f, err := os.Create("cpu.out")
		if err != nil {
			panic(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			panic(err)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	cfg := shadows4d.ConfigPath
	if len(os.Args) > 1 {
		cfg = os.Args[1]
	}
	if err := shadows4d.Run(cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
