// This file is part of accelcircle.
//
// accelcircle is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// accelcircle is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with accelcircle.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/accelcircle/accelcircle/digest"
	"github.com/accelcircle/accelcircle/environment"
	"github.com/accelcircle/accelcircle/firmware/accel"
	"github.com/accelcircle/accelcircle/gui/screenshot"
	"github.com/accelcircle/accelcircle/gui/sdlscreen"
	"github.com/accelcircle/accelcircle/hardware"
	"github.com/accelcircle/accelcircle/hardware/preferences"
	"github.com/accelcircle/accelcircle/logger"
	"github.com/accelcircle/accelcircle/modalflag"
	"github.com/accelcircle/accelcircle/performance"
	"github.com/accelcircle/accelcircle/performance/limiter"
	"github.com/accelcircle/accelcircle/prefs"
	"github.com/accelcircle/accelcircle/regression"
	"github.com/accelcircle/accelcircle/serialterm"
	"github.com/accelcircle/accelcircle/statsview"
	"github.com/accelcircle/accelcircle/verilog"
	"github.com/accelcircle/accelcircle/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate. for example, the RUN and MONITOR modes
	// want to finish writing files before the program ends.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

func newMainSync() *mainSync {
	return &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}
}

// how long the main thread sleeps between calls to Service() when there is
// nothing else to do.
const serviceInterval = 5 * time.Millisecond

// #mainthread
func main() {
	sync := newMainSync()

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
			time.Sleep(serviceInterval)
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "PLAY", "MONITOR", "REGRESS", "PERFORMANCE", "VERILOG")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "PLAY":
		err = play(md, sync)

	case "MONITOR":
		err = monitor(md, sync)

	case "REGRESS":
		err = regress(md, sync)

	case "PERFORMANCE":
		err = perform(md)

	case "VERILOG":
		err = convertHex(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to every mode that creates a SoC.
type socFlags struct {
	prefsFile *string
	prefs     *string
	stimulus  *string
	log       *bool
}

func addSoCFlags(md *modalflag.Modes) socFlags {
	return socFlags{
		prefsFile: md.AddString("prefsfile", "", "preferences file to use in place of the global preferences"),
		prefs:     md.AddString("prefs", "", "preference overrides. eg. \"firmware.radius::20; hardware.counterwidth::24\""),
		stimulus:  md.AddString("stimulus", "", "accelerometer stimulus. eg. constant:0x00100000, walk:4, trace:file.wav@50, script:file.lua"),
		log:       md.AddBool("log", false, "echo log to stdout"),
	}
}

// create the SoC described by the flags. the stimulus argument, if not
// empty, takes precedence over the stimulus flag.
func (f socFlags) newSoC(label environment.Label, stimulus string) (*hardware.SoC, error) {
	if *f.log {
		logger.SetEcho(logger.NewColorizer(os.Stdout))
	} else {
		logger.SetEcho(nil)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	var p *preferences.Preferences
	if *f.prefsFile != "" {
		var err error
		p, err = preferences.NewPreferencesFromFile(*f.prefsFile)
		if err != nil {
			return nil, err
		}
	}

	soc, err := hardware.NewSoC(label, p)
	if err != nil {
		return nil, err
	}

	if stimulus == "" {
		stimulus = *f.stimulus
	}
	if stimulus != "" {
		if err := soc.AttachStimulus(stimulus); err != nil {
			return nil, err
		}
	}

	return soc, nil
}

func run(md *modalflag.Modes, sync *mainSync) (rerr error) {
	md.NewMode()

	sf := addSoCFlags(md)
	frames := md.AddInt("frames", 0, "number of frames to run (0 to run until interrupted)")
	serial := md.AddBool("serial", true, "print readings sent over the serial line")
	hex := md.AddBool("hex", false, "include serial bytes when printing readings")
	showDigest := md.AddBool("digest", false, "print the digest of the panel and serial output when finished")
	normalise := md.AddBool("normalise", false, "use default preferences and a fixed random seed")
	wav := md.AddString("wav", "", "record readings to wav file")
	wavMode := md.AddString("wavmode", "intensity", "what to record to the wav file: intensity, lanes")
	wavRate := md.AddInt("wavrate", 50, "sample rate of the wav file")
	png := md.AddString("png", "", "save the panel to a png file when finished")
	viz := md.AddString("memviz", "", "write the structure of the SoC to a dot file when finished")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	md.AdditionalHelp(`Run the firmware without a display. Readings sent over the serial line are
printed to the terminal. If no stimulus argument is given the stimulus from the
preferences is used.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var stimulus string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		stimulus = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("stats server not available in this build")
		}
		statsview.Launch(md.Output)
	}

	soc, err := sf.newSoC(environment.MainSimulation, stimulus)
	if err != nil {
		return err
	}

	if *normalise {
		stim := soc.Accel.Stimulus().String()
		if err := soc.Normalise(); err != nil {
			return err
		}
		if err := soc.AttachStimulus(stim); err != nil {
			return err
		}
	}

	// serial output goes to the digest and to the console
	var sinks []io.Writer

	var dig *digest.Video
	if *showDigest {
		dig = digest.NewVideo(soc.OLED)
		sinks = append(sinks, dig)
	}

	var framer *serialterm.Framer
	if *serial {
		con := serialterm.NewConsole(md.Output)
		con.SetHex(*hex)
		framer = serialterm.NewFramer(con.Reading)
		sinks = append(sinks, framer)
	}

	if len(sinks) > 0 {
		soc.UART.AttachSink(io.MultiWriter(sinks...))
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		m, err := wavwriter.ParseMode(*wavMode)
		if err != nil {
			return err
		}
		aw, err = wavwriter.New(*wav, *wavRate, m)
		if err != nil {
			return err
		}
		defer endWav(aw, soc.Env, &rerr)
	}

	fw, err := soc.NewFirmware()
	if err != nil {
		return err
	}

	// interrupt ends the run rather than the program so that files can be
	// written
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = soc.Run(fw, *frames, func(_ int, r accel.Reading) (bool, error) {
		if aw != nil {
			aw.AddReading(r)
		}
		return ctx.Err() == nil, nil
	})
	if err != nil {
		return err
	}

	if err := soc.End(); err != nil {
		return err
	}

	if *png != "" {
		if err := screenshot.Save(soc.OLED.Snapshot(), screenshot.DefaultScale, *png); err != nil {
			return err
		}
	}

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return err
		}
		memviz.Map(f, soc)
		if err := f.Close(); err != nil {
			return err
		}
	}

	if dig != nil {
		md.Output.Write([]byte(fmt.Sprintf("%s\n", dig.Hash())))
	}

	if framer != nil {
		if n, dropped := framer.Stats(); dropped > 0 {
			md.Output.Write([]byte(fmt.Sprintf("! %d readings, %d bytes dropped\n", n, dropped)))
		}
	}

	if n := soc.UART.Overruns(); n > 0 {
		md.Output.Write([]byte(fmt.Sprintf("! %d uart overruns\n", n)))
	}

	return nil
}

// finish the wav file when a mode returns. an error from the mode takes
// precedence over an error writing the file.
func endWav(aw *wavwriter.WavWriter, env logger.Permission, rerr *error) {
	if err := aw.End(env); err != nil && *rerr == nil {
		*rerr = err
	}
}

func play(md *modalflag.Modes, sync *mainSync) (rerr error) {
	md.NewMode()

	sf := addSoCFlags(md)
	scale := md.AddInt("scale", 6, "size of each panel pixel in the window")
	fpsCap := md.AddBool("fpscap", true, "limit the speed of the simulation to the speed of the board")
	wav := md.AddString("wav", "", "record readings to wav file")

	md.AdditionalHelp(`Run the firmware and show the panel in a window. Press P or SPACE to pause,
S or F12 to save a screenshot and Q or ESCAPE to quit.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var stimulus string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		stimulus = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	soc, err := sf.newSoC(environment.MainSimulation, stimulus)
	if err != nil {
		return err
	}

	var aw *wavwriter.WavWriter
	if *wav != "" {
		aw, err = wavwriter.New(*wav, 50, wavwriter.Intensity)
		if err != nil {
			return err
		}
		defer endWav(aw, soc.Env, &rerr)
	}

	// create gui
	sync.creator <- func() (GuiCreator, error) {
		return sdlscreen.NewScreen(*scale)
	}

	// wait for creator result
	var scr *sdlscreen.Screen
	select {
	case g := <-sync.creation:
		scr = g.(*sdlscreen.Screen)
	case err := <-sync.creationError:
		return err
	}

	soc.OLED.AddPixelRenderer(scr)

	fw, err := soc.NewFirmware()
	if err != nil {
		return err
	}

	lim := limiter.NewLimiter(soc.Env.Prefs.ClockDivBits.Get().(int))
	lim.Reset(soc.Counter.Total())

	paused := false

	err = soc.Run(fw, 0, func(frame int, r accel.Reading) (bool, error) {
		if aw != nil {
			aw.AddReading(r)
		}

		for {
			select {
			case ev := <-scr.Events():
				switch ev {
				case sdlscreen.EventQuit:
					return false, nil
				case sdlscreen.EventPause:
					paused = !paused
					if !paused {
						lim.Reset(soc.Counter.Total())
					}
				case sdlscreen.EventScreenshot:
					fn, err := screenshot.SaveUnique(soc.OLED.Snapshot(), screenshot.DefaultScale, fmt.Sprintf("%d", frame))
					if err != nil {
						logger.Log(soc.Env, "play", err)
					} else {
						logger.Logf(soc.Env, "play", "screenshot saved to %s", fn)
					}
				}
				continue // for loop

			default:
			}

			if !paused {
				break // for loop
			}
			time.Sleep(serviceInterval)
		}

		if *fpsCap {
			lim.Wait(soc.Counter.Total())
		}

		return true, nil
	})
	if err != nil {
		return err
	}

	return soc.End()
}

func monitor(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	baud := md.AddInt("baud", serialterm.DefaultBaud, "baud rate of the serial device")
	hex := md.AddBool("hex", false, "include serial bytes when printing readings")
	colour := md.AddString("colour", "auto", "use colour in output: auto, on, off")

	md.AdditionalHelp(`Print the readings sent over the serial line by a real board. The argument is
the serial device, for example /dev/ttyUSB0. The argument can also be a file
containing previously captured serial output.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("serial device or file required for %s mode", md)
	}
	name := md.GetArg(0)

	con := serialterm.NewConsole(md.Output)
	con.SetHex(*hex)
	switch strings.ToLower(*colour) {
	case "auto":
	case "on":
		con.SetColour(true)
	case "off":
		con.SetColour(false)
	default:
		return fmt.Errorf("unknown colour option (%s)", *colour)
	}

	framer := serialterm.NewFramer(con.Reading)

	info, err := os.Stat(name)
	if err != nil {
		return err
	}

	var src io.ReadCloser
	if info.Mode()&os.ModeCharDevice == os.ModeCharDevice {
		src, err = serialterm.OpenPort(name, *baud)
	} else {
		src, err = os.Open(name)
	}
	if err != nil {
		return err
	}
	defer src.Close()

	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := serialterm.Monitor(ctx, src, framer); err != nil {
		return err
	}

	if n, dropped := framer.Stats(); dropped > 0 || framer.Pending() > 0 {
		md.Output.Write([]byte(fmt.Sprintf("! %d readings, %d bytes dropped, %d bytes incomplete\n", n, dropped, framer.Pending())))
	}

	return nil
}

type yesReader struct{}

func (*yesReader) Read(p []byte) (n int, err error) {
	p[0] = 'y'
	return 1, nil
}

type nopWriter struct{}

func (*nopWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

func regress(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AddSubModes("RUN", "LIST", "DELETE", "ADD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()

		verbose := md.AddBool("verbose", false, "output more detail (eg. error messages)")
		failOnError := md.AddBool("fail", false, "fail on error")

		md.AdditionalHelp(`Keys of the tests to run can be given as arguments. The special key FAILS
reruns the tests that failed the last time.`)

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		// turn off default sigint handling
		sync.state <- stateRequest{req: reqNoIntSig}

		return regression.RegressRun(md.Output, *verbose, *failOnError, regression.ParseKeys(md.RemainingArgs()))

	case "LIST":
		md.NewMode()

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return regression.RegressList(md.Output)
		default:
			return fmt.Errorf("no additional arguments required for %s mode", md)
		}

	case "DELETE":
		md.NewMode()

		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return fmt.Errorf("database key required for %s mode", md)
		case 1:
			// use stdin for confirmation unless "yes" flag has been sent
			var confirmation io.Reader
			if *answerYes {
				confirmation = &yesReader{}
			} else {
				confirmation = os.Stdin
			}

			return regression.RegressDelete(md.Output, confirmation, md.GetArg(0))
		default:
			return fmt.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		return regressAdd(md)
	}

	return nil
}

func regressAdd(md *modalflag.Modes) error {
	md.NewMode()

	mode := md.AddString("mode", "FRAME", "type of regression entry: FRAME, SERIAL")
	notes := md.AddString("notes", "", "additional annotation for the database")
	numFrames := md.AddInt("frames", 10, "number of frames to run")
	panelMode := md.AddString("panelmode", "", "panel control value (default from preferences)")
	colourSource := md.AddString("colour", "", "colour source: intensity, axes (default from preferences)")
	log := md.AddBool("log", false, "echo log to stdout")

	md.AdditionalHelp(
		`The argument is the stimulus used for the test. For example:

    constant:0x00100000
    walk:4
    trace:recording.wav@50

The FRAME mode stores a digest of the panel and the serial output. The SERIAL
mode stores the serial output in a log file.

The -log flag instructs the program to echo the log to the console. Note that
asking for log output will suppress regression progress meters.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set log echo
	if *log {
		logger.SetEcho(os.Stdout)
		md.Output = &nopWriter{}
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("stimulus required for %s mode", md)
	}

	setup := regression.Setup{
		Stimulus:     md.GetArg(0),
		NumFrames:    *numFrames,
		PanelMode:    *panelMode,
		ColourSource: *colourSource,
	}

	var reg regression.Regressor

	switch strings.ToUpper(*mode) {
	case "FRAME":
		reg, err = regression.NewFrameEntry(setup, *notes)
	case "SERIAL":
		reg, err = regression.NewSerialEntry(setup, *notes)
	default:
		return fmt.Errorf("unknown regression mode (%s)", *mode)
	}
	if err != nil {
		return err
	}

	err = regression.RegressAdd(md.Output, reg)
	if err != nil {
		// using carriage return (without newline) at beginning of error
		// message because we want to overwrite the last output from
		// RegressAdd()
		return fmt.Errorf("\rerror adding regression test: %w", err)
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	sf := addSoCFlags(md)
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "create profiling files: cpu, mem, trace, all, none")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	soc, err := sf.newSoC(environment.MainSimulation, "")
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, soc, dur)
}

func convertHex(md *modalflag.Modes) (rerr error) {
	md.NewMode()

	def := verilog.DefaultMemory()
	output := md.AddString("o", "memory_initialization.v", "output file")
	instrName := md.AddString("instr", def.InstrName, "name of the instruction memory")
	dataName := md.AddString("data", def.DataName, "name of the data memory")
	slots := md.AddInt("slots", def.Slots, "number of slots in each memory")

	md.AdditionalHelp(`Convert the hex output of the firmware build into a Verilog module that
initialises the instruction and data memories. The hex file has one word per
line with a DATA line between the instructions and the data constants.`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("hex file required for %s mode", md)
	}

	in, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer in.Close()

	img, err := verilog.Parse(in)
	if err != nil {
		return err
	}

	out, err := os.Create(*output)
	if err != nil {
		return err
	}
	defer func() {
		if err := out.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	err = img.Write(out, verilog.Memory{InstrName: *instrName, DataName: *dataName, Slots: *slots})
	if err != nil {
		return err
	}

	md.Output.Write([]byte(fmt.Sprintf("verilog written to %s\n", *output)))

	return nil
}
