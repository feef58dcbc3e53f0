// Package accessory implements the Accessory node of the HAP data model: an
// ordered list of services, addressed by a server-unique AID, whose characteristics
// receive contiguous IIDs at publish time.
package accessory

import (
	"github.com/wrenhouse/hap/characteristic"
	"github.com/wrenhouse/hap/event"
	"github.com/wrenhouse/hap/haptype"
	"github.com/wrenhouse/hap/service"
)

// Information describes the Accessory Information service's required fields. It is
// the external collaborator's input to every accessory constructor, mirroring
// original_source/src/main.rs's Information literal.
type Information struct {
	Name             string
	Manufacturer     string
	Model            string
	SerialNumber     string
	FirmwareRevision string
}

// Accessory is an ordered list of services, the first of which is always Accessory
// Information.
type Accessory struct {
	// AID is this accessory's instance id, unique across the server, >= 1. The
	// primary (bridge) accessory has AID 1.
	AID uint64

	Services []*service.Service
}

// New creates an accessory whose first service is Accessory Information, built from
// info. The per-service accessory constructors (accessory/generated.go)
// call this and then add their own primary service.
func New(info Information) *Accessory {
	a := &Accessory{}
	a.AddService(accessoryInformationService(info))
	return a
}

// AddService appends svc to the accessory's service list.
func (a *Accessory) AddService(svc *service.Service) {
	a.Services = append(a.Services, svc)
}

// PrimaryService returns the service marked Primary, or nil if none is (the
// Accessory Information service constructed by New never is).
func (a *Accessory) PrimaryService() *service.Service {
	for _, s := range a.Services {
		if s.Primary {
			return s
		}
	}
	return nil
}

// CharacteristicByIID finds the characteristic with the given IID, or nil if this
// accessory has none with that id.
func (a *Accessory) CharacteristicByIID(iid uint64) *characteristic.Characteristic {
	for _, s := range a.Services {
		for _, c := range s.Characteristics() {
			if c.IID == iid {
				return c
			}
		}
	}
	return nil
}

// AssignIIDs walks the accessory's services in order, assigning each service the
// next IID and then each of its characteristics the next IID after that —
// contiguous, starting at 1, service-before-its-characteristics — and wires pub as
// every characteristic's event publisher. This is the IID assignment routine of
// SPEC_FULL.md §4.A, run once at publish time; IIDs are stable for the process's
// lifetime afterward.
func (a *Accessory) AssignIIDs(pub event.Publisher) {
	next := uint64(1)
	for _, s := range a.Services {
		s.IID = next
		next++
		for _, c := range s.Characteristics() {
			c.IID = next
			next++
			c.SetPublisher(pub)
		}
	}
}

func accessoryInformationService(info Information) *service.Service {
	s := service.New(accessoryInformationType)

	identify := characteristic.New(identifyType, characteristic.FormatBool)
	identify.Perms = []characteristic.Perm{characteristic.PermPairedWrite}

	manufacturer := stringChar(manufacturerType, info.Manufacturer)
	model := stringChar(modelType, info.Model)
	name := stringChar(nameType, info.Name)
	serial := stringChar(serialNumberType, info.SerialNumber)
	firmware := stringChar(firmwareRevisionType, info.FirmwareRevision)

	s.AddRequired(identify)
	s.AddRequired(manufacturer)
	s.AddRequired(model)
	s.AddRequired(name)
	s.AddRequired(serial)
	s.AddRequired(firmware)
	return s
}

func stringChar(t haptype.HapType, value string) *characteristic.Characteristic {
	c := characteristic.New(t, characteristic.FormatString)
	c.Perms = []characteristic.Perm{characteristic.PermPairedRead}
	c.SetValue(value)
	return c
}

// These seven types back the Accessory Information service built by New. They are
// declared here (rather than threaded through the generator) because every
// accessory needs Accessory Information regardless of which metadata-driven service
// becomes its primary one.
const (
	accessoryInformationType = haptype.AccessoryInformation
	identifyType             = haptype.Identify
	manufacturerType         = haptype.Manufacturer
	modelType                = haptype.Model
	nameType                 = haptype.Name
	serialNumberType         = haptype.SerialNumber
	firmwareRevisionType     = haptype.FirmwareRevision
)
