package interaction

import (
	"errors"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// KeyboardReader handles keyboard input in raw mode
type KeyboardReader struct {
	oldState *unix.Termios
	in       io.Reader
	input    chan KeyEvent
	stop     chan struct{}
}

// KeyEvent represents a keyboard event
type KeyEvent struct {
	Key  rune
	Type KeyType
}

// KeyType represents the type of key pressed
type KeyType int

const (
	KeyChar KeyType = iota
	KeyEscape
	KeyInterrupt
)

// NewKeyboardReader puts stdin into raw mode and starts reading keys from it
func NewKeyboardReader() (*KeyboardReader, error) {
	kr := newKeyboardReader(os.Stdin)

	if err := kr.enableRawMode(); err != nil {
		return nil, err
	}

	go kr.readInput()

	return kr, nil
}

func newKeyboardReader(in io.Reader) *KeyboardReader {
	return &KeyboardReader{
		in:    in,
		input: make(chan KeyEvent, 10),
		stop:  make(chan struct{}),
	}
}

// readInput reads keyboard input in a goroutine until stopped or the input ends
func (kr *KeyboardReader) readInput() {
	buf := make([]byte, 3)

	for {
		select {
		case <-kr.stop:
			return
		default:
		}

		n, err := kr.in.Read(buf)
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil || n == 0 {
			continue
		}

		event := kr.parseInput(buf[:n])
		if event != nil {
			select {
			case kr.input <- *event:
			case <-kr.stop:
				return
			}
		}
	}
}

// parseInput parses raw keyboard input. Arrow keys and other escape sequences are ignored.
func (kr *KeyboardReader) parseInput(buf []byte) *KeyEvent {
	if len(buf) == 0 {
		return nil
	}

	switch buf[0] {
	case 3:
		return &KeyEvent{Key: 3, Type: KeyInterrupt}
	case 27:
		if len(buf) == 1 {
			return &KeyEvent{Key: 27, Type: KeyEscape}
		}
		return nil
	}

	return &KeyEvent{Key: rune(buf[0]), Type: KeyChar}
}

// Events returns the keyboard event channel
func (kr *KeyboardReader) Events() <-chan KeyEvent {
	return kr.input
}

// Close stops the keyboard reader and restores terminal
func (kr *KeyboardReader) Close() error {
	close(kr.stop)
	return kr.disableRawMode()
}
