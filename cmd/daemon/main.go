package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/ttdatt/vitype-ime/internal/engine"
)

const (
	serviceName = "com.github.vitype.ime"
	objectPath  = "/Engine"
)

// Keysym values the daemon translates before handing a rune to the engine.
// The engine itself never sees an X11 keysym — that translation, and the
// handling of keys that never reach a syllable (Backspace, Space, Enter,
// Escape, Tab), belongs to this thin host collaborator, not the core.
const (
	keyBackspace uint32 = 0xff08
	keyReturn    uint32 = 0xff0d
	keyEscape    uint32 = 0xff1b
	keySpace     uint32 = 0x0020
	keyTab       uint32 = 0xff09
	keyDelete    uint32 = 0xffff
)

const (
	modControl uint32 = 1 << 2
	modMod1    uint32 = 1 << 3 // Alt
)

// keysymToRune converts an X11 keysym to the rune the engine expects.
func keysymToRune(keysym uint32) rune {
	if keysym >= 0x0020 && keysym <= 0x007e {
		return rune(keysym)
	}
	if keysym >= 0x00a0 && keysym <= 0x00ff {
		return rune(keysym)
	}
	if keysym >= 0x01000000 {
		return rune(keysym - 0x01000000)
	}
	return 0
}

// InputEngine is the D-Bus object that receives key events from Fcitx5.
type InputEngine struct {
	eng     *engine.EngineState
	logger  *log.Logger
	enabled bool
}

// NewInputEngine creates a new InputEngine with the engine's default config.
func NewInputEngine(logger *log.Logger) *InputEngine {
	return &InputEngine{
		eng:     engine.NewEngineState(engine.DefaultConfig()),
		logger:  logger,
		enabled: true,
	}
}

// ProcessKey handles key events from the Fcitx5 frontend.
// Input: keysym (X11 keycode), modifiers (Shift/Ctrl/Alt state).
// Output: handled (was the key consumed), commitText (text to commit),
// preeditText (the composition currently shown in place of the cursor).
func (e *InputEngine) ProcessKey(keysym uint32, modifiers uint32) (bool, string, string, *dbus.Error) {
	handled, commit, preedit := e.processKey(keysym, modifiers)
	if e.logger != nil {
		e.logger.Printf("key=0x%x mods=0x%x handled=%v commit=%q preedit=%q",
			keysym, modifiers, handled, commit, preedit)
	}
	return handled, commit, preedit, nil
}

func (e *InputEngine) processKey(keysym uint32, modifiers uint32) (handled bool, commitText string, preeditText string) {
	if !e.enabled {
		return false, "", ""
	}

	if modifiers&(modControl|modMod1) != 0 {
		if e.eng.HasActiveSyllable() {
			preedit := e.eng.Preedit()
			e.eng.Reset()
			return false, preedit, ""
		}
		return false, "", ""
	}

	switch keysym {
	case keyBackspace:
		if !e.eng.HasActiveSyllable() {
			return false, "", ""
		}
		e.eng.DeleteLastCharacter()
		return true, "", e.eng.Preedit()

	case keySpace, keyReturn, keyTab:
		preedit := e.eng.Preedit()
		hadSyllable := e.eng.HasActiveSyllable()
		e.eng.Process(' ') // any whitespace boundary commits the active syllable
		if keysym == keySpace {
			return true, preedit + " ", ""
		}
		if !hadSyllable {
			return false, "", ""
		}
		return true, preedit, ""

	case keyEscape:
		e.eng.Reset()
		return true, "", ""

	case keyDelete:
		if e.eng.HasActiveSyllable() {
			preedit := e.eng.Preedit()
			e.eng.Reset()
			return false, preedit, ""
		}
		return false, "", ""
	}

	char := keysymToRune(keysym)
	if char == 0 {
		return false, "", ""
	}

	e.eng.Process(char)
	return true, "", e.eng.Preedit()
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.eng.Reset()
	fmt.Println(">>> [vitype] Engine reset")
	return nil
}

// SetEnabled enables or disables the engine.
func (e *InputEngine) SetEnabled(enabled bool) *dbus.Error {
	e.enabled = enabled
	fmt.Printf(">>> [vitype] Engine enabled: %v\n", enabled)
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.eng.Preedit(), nil
}

// SetInputMethod switches between Telex (0) and VNI (1); an unknown value
// falls back to Telex.
func (e *InputEngine) SetInputMethod(method uint8) *dbus.Error {
	if method == 1 {
		e.eng.SetInputMethod(engine.VNI)
	} else {
		e.eng.SetInputMethod(engine.Telex)
	}
	return nil
}

// SetTonePlacement switches between Orthographic (0) and NucleusOnly (1);
// an unknown value falls back to Orthographic.
func (e *InputEngine) SetTonePlacement(mode uint8) *dbus.Error {
	if mode == 1 {
		e.eng.SetTonePlacement(engine.NucleusOnly)
	} else {
		e.eng.SetTonePlacement(engine.Orthographic)
	}
	return nil
}

// SetAutoFixTone toggles automatic tone repositioning.
func (e *InputEngine) SetAutoFixTone(enabled bool) *dbus.Error {
	e.eng.SetAutoFixTone(enabled)
	return nil
}

// SetOutputEncoding switches between Precomposed (0) and Decomposed (1);
// an unknown value falls back to Precomposed.
func (e *InputEngine) SetOutputEncoding(encoding uint8) *dbus.Error {
	if encoding == 1 {
		e.eng.SetOutputEncoding(engine.Decomposed)
	} else {
		e.eng.SetOutputEncoding(engine.Precomposed)
	}
	return nil
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("typing.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [vitype] Logging to typing.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [vitype] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	inputEngine := NewInputEngine(logger)

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("vitype-ime backend is running")
	fmt.Println("================================================")
	fmt.Printf("  Service:      %s\n", serviceName)
	fmt.Printf("  Object Path:  %s\n", objectPath)
	fmt.Printf("  Input Method: Telex\n")
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\n>>> [vitype] Shutting down...")
}
