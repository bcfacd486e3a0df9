// Command sm83run runs a Game Boy ROM image against the SM83 core headless,
// with no PPU/APU/joypad attached, and reports pass/fail by watching the
// serial port the way blargg's test ROMs report their own results.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/go-gameboy/sm83core/internal/bus"
	"github.com/go-gameboy/sm83core/internal/cpu"
	"github.com/go-gameboy/sm83core/internal/trace"
)

func main() {
	romPath := flag.String("rom", "", "path to ROM image")
	bootPath := flag.String("bootrom", "", "optional DMG boot ROM to run from 0x0000 until FF50 disables it")
	steps := flag.Int("steps", 5_000_000, "max CPU steps to run")
	startPC := flag.Int("pc", 0x0100, "initial PC value when not using a boot ROM")
	doTrace := flag.Bool("trace", false, "print one line per executed instruction")
	until := flag.String("until", "Passed", "stop when serial output contains this substring (case-insensitive); empty to disable")
	auto := flag.Bool("auto", false, "auto-detect 'Passed' or 'Failed N tests' in serial output and exit 0/1")
	timeout := flag.Duration("timeout", 0, "optional wall-clock timeout (e.g. 30s); 0 disables")
	traceOnFail := flag.Bool("traceOnFail", false, "on -auto failure, dump a recent trace window")
	traceWindow := flag.Int("traceWindow", 200, "instructions retained for -traceOnFail")
	serialWindow := flag.Int("serialWindow", 8192, "bytes retained for diagnostic serial dump on failure")
	flag.Parse()

	if *romPath == "" {
		log.Fatal("-rom is required")
	}
	rom, err := os.ReadFile(*romPath)
	if err != nil {
		log.Fatalf("read rom: %v", err)
	}
	var boot []byte
	if *bootPath != "" {
		boot, err = os.ReadFile(*bootPath)
		if err != nil {
			log.Fatalf("read bootrom: %v", err)
		}
	}

	b := bus.New(rom)
	if len(boot) >= 0x100 {
		b.SetBootROM(boot)
	}

	c := cpu.New(b)
	if len(boot) >= 0x100 {
		c.SP = 0xFFFE
		c.PC = 0x0000
		c.IME = false
	} else {
		c.ResetNoBoot()
		c.PC = uint16(*startPC)
	}

	ring := trace.NewRingSink(*traceWindow)
	if *doTrace {
		c.SetTraceSink(trace.NewMultiSink(trace.NewWriterSink(os.Stdout), ring))
	} else if *traceOnFail {
		c.SetTraceSink(ring)
	}

	start := time.Now()
	var deadline time.Time
	if *timeout > 0 {
		deadline = start.Add(*timeout)
	}

	failRe := regexp.MustCompile(`(?i)failed\s+(\d+)\s+tests?`)
	stageRe := regexp.MustCompile(`\b(\d{2}:\d{2})\b`)
	lastStage := ""

	var serialAll strings.Builder // unbounded, used for pass/fail detection
	var serialTail []byte         // trailing window of at most *serialWindow bytes, for diagnostics

	var totalTCycles int
	for i := 0; i < *steps; i++ {
		tCycles, stepErr := c.Step()
		totalTCycles += tCycles
		if stepErr != nil {
			fmt.Printf("\nfatal: %v at PC=%04X (step %d)\n", stepErr, c.PC, i)
			dumpTraceOnFail(traceOnFail, ring)
			os.Exit(2)
		}

		if *auto || *until != "" {
			newBytes := b.Serial().Drain()
			if len(newBytes) > 0 {
				serialAll.Write(newBytes)
				serialTail = appendTail(serialTail, newBytes, *serialWindow)
			}
			serial := serialAll.String()
			if mm := stageRe.FindAllString(serial, -1); len(mm) > 0 {
				lastStage = mm[len(mm)-1]
			}
			if *auto {
				if strings.Contains(strings.ToLower(serial), "passed") {
					fmt.Printf("\nDetected PASS in serial output.\n")
					printStage(lastStage)
					printDone(i+1, totalTCycles, start)
					os.Exit(0)
				}
				if m := failRe.FindStringSubmatch(serial); m != nil {
					fmt.Printf("\nDetected %s in serial output.\n", m[0])
					printStage(lastStage)
					dumpTraceOnFail(traceOnFail, ring)
					dumpSerialTail(serialTail)
					printDone(i+1, totalTCycles, start)
					os.Exit(1)
				}
			} else if strings.Contains(strings.ToLower(serial), strings.ToLower(*until)) {
				fmt.Printf("\nDetected '%s' in serial output.\n", *until)
				printDone(i+1, totalTCycles, start)
				return
			}
		}

		if !deadline.IsZero() && time.Now().After(deadline) {
			fmt.Printf("\nTimeout after %s.\n", time.Since(start).Truncate(time.Millisecond))
			printDone(i+1, totalTCycles, start)
			os.Exit(2)
		}
	}
	printDone(*steps, totalTCycles, start)
}

// appendTail appends newBytes to buf and trims from the front so the
// result never exceeds max bytes, mirroring cpurunner's fixed-size
// serial ring but sized by -serialWindow instead of a compile-time const.
func appendTail(buf, newBytes []byte, max int) []byte {
	buf = append(buf, newBytes...)
	if max > 0 && len(buf) > max {
		buf = buf[len(buf)-max:]
	}
	return buf
}

func printStage(stage string) {
	if stage != "" {
		fmt.Printf("Last stage seen: %s\n", stage)
	}
}

func printDone(steps, tCycles int, start time.Time) {
	fmt.Printf("\nDone: steps=%d tcycles~=%d elapsed=%s\n", steps, tCycles, time.Since(start).Truncate(time.Millisecond))
}

func dumpTraceOnFail(enabled *bool, ring *trace.RingSink) {
	if !*enabled {
		return
	}
	recent := ring.Recent()
	fmt.Printf("\n--- recent trace (last %d instructions) ---\n", len(recent))
	w := trace.NewWriterSink(os.Stdout)
	for _, rec := range recent {
		w.Write(rec)
	}
	fmt.Printf("--- end trace ---\n")
}

func dumpSerialTail(tail []byte) {
	if len(tail) == 0 {
		return
	}
	fmt.Printf("\n--- recent serial (last %d bytes) ---\n%s\n--- end serial ---\n", len(tail), tail)
}
