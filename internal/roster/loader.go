// Package roster loads an optional YAML roster of actors pre-registered at
// process start. Entries pass through the same registration paths as live
// requests, so every registry invariant holds for seeded state.
package roster

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/PranjalBasak/446-Project-1/internal/ledger"
)

// yamlRosterFile is the top-level YAML structure for roster files.
type yamlRosterFile struct {
	Roster yamlRoster `yaml:"roster"`
}

// yamlRoster is the YAML representation of the seeded actor set.
type yamlRoster struct {
	Admins       []yamlAdmin       `yaml:"admins"`
	Trainers     []yamlTrainer     `yaml:"trainers"`
	Participants []yamlParticipant `yaml:"participants"`
}

type yamlAdmin struct {
	ID       uint64 `yaml:"id"`
	Name     string `yaml:"name"`
	Age      uint   `yaml:"age"`
	Identity string `yaml:"identity"`
}

type yamlTrainer struct {
	ID       uint64 `yaml:"id"`
	Name     string `yaml:"name"`
	Age      uint   `yaml:"age"`
	Gender   string `yaml:"gender"`
	Identity string `yaml:"identity"`
}

type yamlParticipant struct {
	ID           uint64 `yaml:"id"`
	Name         string `yaml:"name"`
	Age          uint   `yaml:"age"`
	Gender       string `yaml:"gender"`
	District     string `yaml:"district"`
	Interest     string `yaml:"interest"`
	HasCompleted bool   `yaml:"has_completed"`
	Identity     string `yaml:"identity"`
}

// LoadFile reads a roster YAML file and registers every entry.
//
// Precondition: path must point to a valid YAML roster file; l must be non-nil.
// Postcondition: Returns the number of actors registered, or a non-nil
// error naming the first rejected entry. On error the ledger may hold the
// entries registered before the failure; callers treat that as fatal.
func LoadFile(path string, l *ledger.Ledger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading roster file %s: %w", path, err)
	}
	return LoadBytes(data, l)
}

// LoadBytes parses roster YAML and registers every entry in order:
// admins first, then trainers, then participants.
//
// Postcondition: Returns the number of actors registered or a non-nil error.
func LoadBytes(data []byte, l *ledger.Ledger) (int, error) {
	var file yamlRosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parsing roster: %w", err)
	}

	count := 0
	for _, a := range file.Roster.Admins {
		identity, err := uuid.Parse(a.Identity)
		if err != nil {
			return count, fmt.Errorf("admin %d identity: %w", a.ID, err)
		}
		if _, err := l.RegisterAdmin(identity, a.ID, a.Name, a.Age); err != nil {
			return count, fmt.Errorf("registering admin %d: %w", a.ID, err)
		}
		count++
	}
	for _, t := range file.Roster.Trainers {
		identity, err := uuid.Parse(t.Identity)
		if err != nil {
			return count, fmt.Errorf("trainer %d identity: %w", t.ID, err)
		}
		if _, err := l.RegisterTrainer(identity, t.ID, t.Name, t.Age, t.Gender); err != nil {
			return count, fmt.Errorf("registering trainer %d: %w", t.ID, err)
		}
		count++
	}
	for _, p := range file.Roster.Participants {
		identity, err := uuid.Parse(p.Identity)
		if err != nil {
			return count, fmt.Errorf("participant %d identity: %w", p.ID, err)
		}
		interest, err := ledger.ParseTrainingInterest(p.Interest)
		if err != nil {
			return count, fmt.Errorf("participant %d: %w", p.ID, err)
		}
		if _, err := l.RegisterParticipant(identity, p.ID, p.Name, p.Age, p.Gender, p.District, interest, p.HasCompleted); err != nil {
			return count, fmt.Errorf("registering participant %d: %w", p.ID, err)
		}
		count++
	}
	return count, nil
}
