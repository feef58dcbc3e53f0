// Package service implements the Service node of the HAP data model: a named group
// of characteristics, some required and always present, some optional and absent
// until added.
package service

import (
	"github.com/wrenhouse/hap/characteristic"
	"github.com/wrenhouse/hap/haptype"
)

// Service is a group of characteristics identified by a HAP type.
type Service struct {
	// IID is this service's instance id, unique within its accessory. Zero until
	// the owning accessory is published.
	IID uint64

	Type    haptype.HapType
	Hidden  bool
	Primary bool

	// Required characteristics are always present, in metadata definition order.
	Required []*characteristic.Characteristic
	// Optional characteristics are present only once added via AddOptional.
	Optional []*characteristic.Characteristic
}

// New creates an empty service of the given type.
func New(t haptype.HapType) *Service {
	return &Service{Type: t}
}

// AddRequired appends c to the service's required characteristics, in the order the
// generator emits them (metadata definition order).
func (s *Service) AddRequired(c *characteristic.Characteristic) {
	s.Required = append(s.Required, c)
}

// AddOptional appends c to the service's optional characteristics.
func (s *Service) AddOptional(c *characteristic.Characteristic) {
	s.Optional = append(s.Optional, c)
}

// Characteristics returns every characteristic the service currently holds,
// required first, in the order IIDs must be assigned.
func (s *Service) Characteristics() []*characteristic.Characteristic {
	all := make([]*characteristic.Characteristic, 0, len(s.Required)+len(s.Optional))
	all = append(all, s.Required...)
	all = append(all, s.Optional...)
	return all
}

// CharacteristicByType returns the first characteristic of type t the service
// holds, or nil if it has none.
func (s *Service) CharacteristicByType(t haptype.HapType) *characteristic.Characteristic {
	for _, c := range s.Characteristics() {
		if c.Type == t {
			return c
		}
	}
	return nil
}
