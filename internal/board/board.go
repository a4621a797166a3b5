// Package board holds the catalogue of supported evaluation boards: the
// frequency of every clock source the timer can select, and where the
// user LED is wired.
package board

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed boards.yaml
var rawBoards []byte

var profiles Profiles

// ErrUnknownBoard is returned when no profile matches a name or alias.
var ErrUnknownBoard = errors.New("board: unknown board")

// Default is the profile used when none is configured.
const Default = "cy8ckit-062s2-43012"

// Clock names a clock source in a profile's clocks map.
type Clock string

const (
	ClockCPU   Clock = "cpu"
	ClockIMO   Clock = "imo"
	ClockECO   Clock = "eco"
	ClockLF    Clock = "lf"
	ClockTimer Clock = "timer"
)

// LED describes the user LED.
type LED struct {
	Port      uint8 `yaml:"port"`
	Pin       uint8 `yaml:"pin"`
	ActiveLow bool  `yaml:"activeLow"`
	// Line is the host GPIO line name used by periph.io.
	Line string `yaml:"line"`
	// BCM is the Broadcom pin number used by go-rpio.
	BCM uint8 `yaml:"bcm"`
}

// Profile describes one board: its clocks and its user LED.
type Profile struct {
	Name    string           `yaml:"name"`
	Aliases []string         `yaml:"aliases"`
	Clocks  map[Clock]uint64 `yaml:"clocks"`
	LED     LED              `yaml:"led"`
}

// ClockHz returns the frequency of a clock source, or 0 if the board does
// not provide it.
func (p Profile) ClockHz(c Clock) uint64 {
	return p.Clocks[c]
}

type Profiles []Profile

// All returns every known profile.
func All() Profiles {
	return profiles
}

// Find returns the profile whose name or alias matches name,
// case-insensitively.
func (ps Profiles) Find(name string) (Profile, error) {
	name = strings.ToLower(name)
	for _, p := range ps {
		if p.Name == name || slices.Contains(p.Aliases, name) {
			return p, nil
		}
	}
	return Profile{}, errors.Wrapf(ErrUnknownBoard, "%q", name)
}

// Names returns the profile names in catalogue order.
func (ps Profiles) Names() []string {
	names := make([]string, 0, len(ps))
	for _, p := range ps {
		names = append(names, p.Name)
	}
	return names
}

// Parse decodes a catalogue in the boards.yaml format.
func Parse(raw []byte) (Profiles, error) {
	var doc struct {
		Boards Profiles `yaml:"boards"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "board: parse catalogue")
	}
	return doc.Boards, nil
}

func init() {
	var err error
	if profiles, err = Parse(rawBoards); err != nil {
		panic(err)
	}
}
