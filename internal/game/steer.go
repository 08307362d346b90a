package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-traffic/internal/core"
)

// SteerStep holds a set of directions for a number of frames.
type SteerStep struct {
	Left, Right bool
	Frames      int
}

// SteerScript is a repeating sequence of steering steps.
type SteerScript []SteerStep

// ParseSteer parses a comma-separated script such as "L30,R15,N10,B5".
// L holds left, R holds right, B holds both, N holds nothing; the number is
// the frame count.
func ParseSteer(s string) (SteerScript, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var script SteerScript
	for _, tok := range strings.Split(s, ",") {
		tok = strings.TrimSpace(tok)
		if len(tok) < 2 {
			return nil, fmt.Errorf("steer: bad step %q", tok)
		}

		var step SteerStep
		switch strings.ToUpper(tok[:1]) {
		case "L":
			step.Left = true
		case "R":
			step.Right = true
		case "B":
			step.Left, step.Right = true, true
		case "N":
		default:
			return nil, fmt.Errorf("steer: unknown direction in %q", tok)
		}

		n, err := strconv.Atoi(tok[1:])
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("steer: bad frame count in %q", tok)
		}
		step.Frames = n
		script = append(script, step)
	}
	return script, nil
}

// Input returns the held directions for the given frame. The script
// repeats; an empty script holds nothing.
func (s SteerScript) Input(frame int) core.InputFrame {
	in := core.NewInputFrame()
	total := 0
	for _, step := range s {
		total += step.Frames
	}
	if total == 0 {
		return in
	}

	pos := frame % total
	for _, step := range s {
		if pos < step.Frames {
			if step.Left {
				in.Set(core.ActionLeft)
			}
			if step.Right {
				in.Set(core.ActionRight)
			}
			return in
		}
		pos -= step.Frames
	}
	return in
}
