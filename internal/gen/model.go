// Package gen implements the metadata-to-model generator: it reads the canonical
// HAP metadata document (metadata.json) and emits the typed characteristic/service/
// accessory modules plus the Category and HapType enumerations consumed by the rest
// of this module.
//
// The templating mechanics are intentionally simple (text/template over a handful of
// string templates) — per the specification, only the resulting semantic model is
// load-bearing, not the generator's own internals.
package gen

import (
	"encoding/json"
	"os"
)

// Metadata is the canonical input document: the full catalog of HAP categories,
// characteristics and services.
type Metadata struct {
	Categories      []CategoryDef      `json:"Categories"`
	Characteristics []CharacteristicDef `json:"Characteristics"`
	Services        []ServiceDef       `json:"Services"`
}

// CategoryDef is one entry of Metadata.Categories.
type CategoryDef struct {
	Name   string `json:"Name"`
	Number int    `json:"Category"`
}

// Constraints mirrors the optional Constraints object attached to a characteristic.
type Constraints struct {
	ValidValues map[string]string `json:"ValidValues,omitempty"`
	MaxValue    *float64          `json:"MaximumValue,omitempty"`
	MinValue    *float64          `json:"MinimumValue,omitempty"`
	StepValue   *float64          `json:"StepValue,omitempty"`
	MaxLen      *int              `json:"MaximumLength,omitempty"`
}

// CharacteristicDef is one entry of Metadata.Characteristics.
type CharacteristicDef struct {
	UUID        string       `json:"UUID"`
	Name        string       `json:"Name"`
	Format      string       `json:"Format"`
	Unit        string       `json:"Unit,omitempty"`
	Constraints *Constraints `json:"Constraints,omitempty"`
	Permissions []string     `json:"Permissions,omitempty"`
}

// ServiceDef is one entry of Metadata.Services.
type ServiceDef struct {
	UUID                    string   `json:"UUID"`
	Name                    string   `json:"Name"`
	RequiredCharacteristics []string `json:"RequiredCharacteristics"`
	OptionalCharacteristics []string `json:"OptionalCharacteristics"`
}

// Load reads and parses the metadata document at path.
func Load(path string) (*Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// excludedFromAccessoryGeneration lists services that do not get a combined
// Accessory-Information-plus-service convenience constructor. These are composite
// services that real accessories embed alongside other services (a camera, a lock,
// a TV) rather than services that stand alone as a single-purpose accessory. The
// exact membership is a policy choice (see DESIGN.md); the list itself is carried
// verbatim from the source this module was modeled after.
var excludedFromAccessoryGeneration = map[string]bool{
	"Accessory Information":        true,
	"Battery Service":              true,
	"Camera RTP Stream Management":  true,
	"Doorbell":                     true,
	"Faucet":                       true,
	"Filter Maintenance":           true,
	"Irrigation System":            true,
	"Lock Management":              true,
	"Lock Mechanism":               true,
	"Microphone":                   true,
	"Service Label":                true,
	"Slat":                         true,
	"Speaker":                      true,
	"Television":                   true,
}
