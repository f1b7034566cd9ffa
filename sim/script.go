// Loads the process script that describes the simulated workload. A
// script is a sequence of process blocks:
//
//	process 1
//	lifespan 5
//	prio 2
//	start 0
//	acquire 0 1 3   # resource 0, at age 1, for 3 ticks
//	end
//
// Tokens after # are comments. Field counts, keyword spelling, PID
// uniqueness and non-negative lifespans are validated at load time;
// the simulation never starts on a malformed script.

package sim

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadScript reads and parses a process script file.
func LoadScript(path string) ([]*Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening script: %w", err)
	}
	defer f.Close()

	procs, err := ParseScript(f)
	if err != nil {
		return nil, fmt.Errorf("parsing script %s: %w", path, err)
	}
	return procs, nil
}

// ParseScript parses a process script into descriptors, in declaration
// order.
func ParseScript(r io.Reader) ([]*Process, error) {
	var (
		procs []*Process
		cur   *Process
		seen  = make(map[int]bool)
	)

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		tokens := tokenize(scanner.Text())
		if len(tokens) == 0 {
			continue
		}

		keyword := tokens[0]
		if keyword != "process" && keyword != "end" && cur == nil {
			return nil, fmt.Errorf("line %d: %q outside a process block", line, keyword)
		}

		switch keyword {
		case "process":
			if cur != nil {
				return nil, fmt.Errorf("line %d: process %d not terminated with end", line, cur.PID)
			}
			fields, err := intFields(tokens, 2, line)
			if err != nil {
				return nil, err
			}
			pid := fields[0]
			if seen[pid] {
				return nil, fmt.Errorf("line %d: duplicate pid %d", line, pid)
			}
			seen[pid] = true
			cur = &Process{PID: pid}

		case "end":
			if cur == nil {
				return nil, fmt.Errorf("line %d: end outside a process block", line)
			}
			if cur.Lifespan < 0 {
				return nil, fmt.Errorf("line %d: process %d has negative lifespan %d", line, cur.PID, cur.Lifespan)
			}
			procs = append(procs, cur)
			cur = nil

		case "lifespan":
			fields, err := intFields(tokens, 2, line)
			if err != nil {
				return nil, err
			}
			cur.Lifespan = fields[0]

		case "prio":
			fields, err := intFields(tokens, 2, line)
			if err != nil {
				return nil, err
			}
			cur.Priority = fields[0]
			cur.OriginalPriority = fields[0]

		case "start":
			fields, err := intFields(tokens, 2, line)
			if err != nil {
				return nil, err
			}
			cur.StartTick = fields[0]

		case "acquire":
			fields, err := intFields(tokens, 4, line)
			if err != nil {
				return nil, err
			}
			cur.Pending = append(cur.Pending, &ResourceClaim{
				ResourceID: fields[0],
				At:         fields[1],
				Duration:   fields[2],
			})

		default:
			return nil, fmt.Errorf("line %d: unknown property %q", line, keyword)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	if cur != nil {
		return nil, fmt.Errorf("process %d not terminated with end", cur.PID)
	}

	return procs, nil
}

// tokenize splits a script line into whitespace-separated tokens,
// dropping everything from the first #-prefixed token on.
func tokenize(line string) []string {
	tokens := strings.Fields(line)
	for i, tok := range tokens {
		if strings.HasPrefix(tok, "#") {
			return tokens[:i]
		}
	}
	return tokens
}

// intFields checks the token count and parses every token after the
// keyword as an integer.
func intFields(tokens []string, want int, line int) ([]int, error) {
	if len(tokens) != want {
		return nil, fmt.Errorf("line %d: %s expects %d field(s), got %d", line, tokens[0], want-1, len(tokens)-1)
	}
	fields := make([]int, 0, want-1)
	for _, tok := range tokens[1:] {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, tokens[0], err)
		}
		fields = append(fields, v)
	}
	return fields, nil
}
