// THIS FILE IS AUTO-GENERATED by internal/gen from metadata.json.
// Run "go run ./cmd/gen-hap" from the module root after updating metadata.json to regenerate it.
//
// Per the generator design, every characteristic is the same Go type
// (Characteristic) parameterized by format, unit, permissions and constraints; the
// generator emits one small constructor per characteristic rather than one type per
// characteristic.

package characteristic

import "github.com/wrenhouse/hap/haptype"

// NewIdentify creates a new Identify characteristic.
func NewIdentify() *Characteristic {
	c := New(haptype.Identify, FormatBool)
	c.Perms = []Perm{PermPairedWrite}
	return c
}

// NewManufacturer creates a new Manufacturer characteristic.
func NewManufacturer() *Characteristic {
	c := New(haptype.Manufacturer, FormatString)
	c.Perms = []Perm{PermPairedRead}
	return c
}

// NewModel creates a new Model characteristic.
func NewModel() *Characteristic {
	c := New(haptype.Model, FormatString)
	c.Perms = []Perm{PermPairedRead}
	return c
}

// NewName creates a new Name characteristic.
func NewName() *Characteristic {
	c := New(haptype.Name, FormatString)
	c.Perms = []Perm{PermPairedRead}
	return c
}

// NewSerialNumber creates a new Serial Number characteristic.
func NewSerialNumber() *Characteristic {
	c := New(haptype.SerialNumber, FormatString)
	c.Perms = []Perm{PermPairedRead}
	return c
}

// NewFirmwareRevision creates a new Firmware Revision characteristic.
func NewFirmwareRevision() *Characteristic {
	c := New(haptype.FirmwareRevision, FormatString)
	c.Perms = []Perm{PermPairedRead}
	return c
}

// NewOn creates a new On characteristic.
func NewOn() *Characteristic {
	c := New(haptype.On, FormatBool)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	return c
}

// NewBrightness creates a new Brightness characteristic.
func NewBrightness() *Characteristic {
	c := New(haptype.Brightness, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewHue creates a new Hue characteristic.
func NewHue() *Characteristic {
	c := New(haptype.Hue, FormatFloat)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Unit = UnitArcdegrees
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(360)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewSaturation creates a new Saturation characteristic.
func NewSaturation() *Characteristic {
	c := New(haptype.Saturation, FormatFloat)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewColorTemperature creates a new Color Temperature characteristic.
func NewColorTemperature() *Characteristic {
	c := New(haptype.ColorTemperature, FormatUInt32)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Constraints.MinValue = floatPtr(140)
	c.Constraints.MaxValue = floatPtr(500)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewCurrentTemperature creates a new Current Temperature characteristic.
func NewCurrentTemperature() *Characteristic {
	c := New(haptype.CurrentTemperature, FormatFloat)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Unit = UnitCelsius
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(0.1)
	return c
}

// NewTargetTemperature creates a new Target Temperature characteristic.
func NewTargetTemperature() *Characteristic {
	c := New(haptype.TargetTemperature, FormatFloat)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Unit = UnitCelsius
	c.Constraints.MinValue = floatPtr(10)
	c.Constraints.MaxValue = floatPtr(38)
	c.Constraints.StepValue = floatPtr(0.1)
	return c
}

// NewCurrentHeatingCoolingState creates a new Current Heating Cooling State characteristic.
func NewCurrentHeatingCoolingState() *Characteristic {
	c := New(haptype.CurrentHeatingCoolingState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(2)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewTargetHeatingCoolingState creates a new Target Heating Cooling State characteristic.
func NewTargetHeatingCoolingState() *Characteristic {
	c := New(haptype.TargetHeatingCoolingState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(3)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewTemperatureDisplayUnits creates a new Temperature Display Units characteristic.
func NewTemperatureDisplayUnits() *Characteristic {
	c := New(haptype.TemperatureDisplayUnits, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewCurrentRelativeHumidity creates a new Current Relative Humidity characteristic.
func NewCurrentRelativeHumidity() *Characteristic {
	c := New(haptype.CurrentRelativeHumidity, FormatFloat)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewTargetRelativeHumidity creates a new Target Relative Humidity characteristic.
func NewTargetRelativeHumidity() *Characteristic {
	c := New(haptype.TargetRelativeHumidity, FormatFloat)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewCurrentAmbientLightLevel creates a new Current Ambient Light Level characteristic.
func NewCurrentAmbientLightLevel() *Characteristic {
	c := New(haptype.CurrentAmbientLightLevel, FormatFloat)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Unit = UnitLux
	c.Constraints.MinValue = floatPtr(0.0001)
	c.Constraints.MaxValue = floatPtr(100000)
	c.Constraints.StepValue = floatPtr(0.0001)
	return c
}

// NewMotionDetected creates a new Motion Detected characteristic.
func NewMotionDetected() *Characteristic {
	c := New(haptype.MotionDetected, FormatBool)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	return c
}

// NewContactSensorState creates a new Contact Sensor State characteristic.
func NewContactSensorState() *Characteristic {
	c := New(haptype.ContactSensorState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewOccupancyDetected creates a new Occupancy Detected characteristic.
func NewOccupancyDetected() *Characteristic {
	c := New(haptype.OccupancyDetected, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewSmokeDetected creates a new Smoke Detected characteristic.
func NewSmokeDetected() *Characteristic {
	c := New(haptype.SmokeDetected, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewLeakDetected creates a new Leak Detected characteristic.
func NewLeakDetected() *Characteristic {
	c := New(haptype.LeakDetected, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewLockCurrentState creates a new Lock Current State characteristic.
func NewLockCurrentState() *Characteristic {
	c := New(haptype.LockCurrentState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(3)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewLockTargetState creates a new Lock Target State characteristic.
func NewLockTargetState() *Characteristic {
	c := New(haptype.LockTargetState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewLockControlPoint creates a new Lock Control Point characteristic.
func NewLockControlPoint() *Characteristic {
	c := New(haptype.LockControlPoint, FormatTlv8)
	c.Perms = []Perm{PermPairedWrite}
	return c
}

// NewVersion creates a new Version characteristic.
func NewVersion() *Characteristic {
	c := New(haptype.Version, FormatString)
	c.Perms = []Perm{PermPairedRead}
	return c
}

// NewCurrentDoorState creates a new Current Door State characteristic.
func NewCurrentDoorState() *Characteristic {
	c := New(haptype.CurrentDoorState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(4)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewTargetDoorState creates a new Target Door State characteristic.
func NewTargetDoorState() *Characteristic {
	c := New(haptype.TargetDoorState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewObstructionDetected creates a new Obstruction Detected characteristic.
func NewObstructionDetected() *Characteristic {
	c := New(haptype.ObstructionDetected, FormatBool)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	return c
}

// NewBatteryLevel creates a new Battery Level characteristic.
func NewBatteryLevel() *Characteristic {
	c := New(haptype.BatteryLevel, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewChargingState creates a new Charging State characteristic.
func NewChargingState() *Characteristic {
	c := New(haptype.ChargingState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(2)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewStatusLowBattery creates a new Status Low Battery characteristic.
func NewStatusLowBattery() *Characteristic {
	c := New(haptype.StatusLowBattery, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewActive creates a new Active characteristic.
func NewActive() *Characteristic {
	c := New(haptype.Active, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewInUse creates a new In Use characteristic.
func NewInUse() *Characteristic {
	c := New(haptype.InUse, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewProgrammableSwitchEvent creates a new Programmable Switch Event characteristic.
func NewProgrammableSwitchEvent() *Characteristic {
	c := New(haptype.ProgrammableSwitchEvent, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(2)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewVolume creates a new Volume characteristic.
func NewVolume() *Characteristic {
	c := New(haptype.Volume, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewMute creates a new Mute characteristic.
func NewMute() *Characteristic {
	c := New(haptype.Mute, FormatBool)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	return c
}

// NewRotationSpeed creates a new Rotation Speed characteristic.
func NewRotationSpeed() *Characteristic {
	c := New(haptype.RotationSpeed, FormatFloat)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewCurrentPosition creates a new Current Position characteristic.
func NewCurrentPosition() *Characteristic {
	c := New(haptype.CurrentPosition, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewTargetPosition creates a new Target Position characteristic.
func NewTargetPosition() *Characteristic {
	c := New(haptype.TargetPosition, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewPositionState creates a new Position State characteristic.
func NewPositionState() *Characteristic {
	c := New(haptype.PositionState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(2)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewHoldPosition creates a new Hold Position characteristic.
func NewHoldPosition() *Characteristic {
	c := New(haptype.HoldPosition, FormatBool)
	c.Perms = []Perm{PermPairedWrite}
	return c
}

// NewFilterChangeIndication creates a new Filter Change Indication characteristic.
func NewFilterChangeIndication() *Characteristic {
	c := New(haptype.FilterChangeIndication, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewFilterLifeLevel creates a new Filter Life Level characteristic.
func NewFilterLifeLevel() *Characteristic {
	c := New(haptype.FilterLifeLevel, FormatFloat)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Unit = UnitPercentage
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(100)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewResetFilterIndication creates a new Reset Filter Indication characteristic.
func NewResetFilterIndication() *Characteristic {
	c := New(haptype.ResetFilterIndication, FormatUInt8)
	c.Perms = []Perm{PermPairedWrite}
	c.Constraints.MinValue = floatPtr(1)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewServiceLabelNamespace creates a new Service Label Namespace characteristic.
func NewServiceLabelNamespace() *Characteristic {
	c := New(haptype.ServiceLabelNamespace, FormatUInt8)
	c.Perms = []Perm{PermPairedRead}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewCurrentSlatState creates a new Current Slat State characteristic.
func NewCurrentSlatState() *Characteristic {
	c := New(haptype.CurrentSlatState, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(2)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewSlatType creates a new Slat Type characteristic.
func NewSlatType() *Characteristic {
	c := New(haptype.SlatType, FormatUInt8)
	c.Perms = []Perm{PermPairedRead}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewConfiguredName creates a new Configured Name characteristic.
func NewConfiguredName() *Characteristic {
	c := New(haptype.ConfiguredName, FormatString)
	c.Perms = []Perm{PermPairedRead, PermPairedWrite}
	return c
}

// NewSleepDiscoveryMode creates a new Sleep Discovery Mode characteristic.
func NewSleepDiscoveryMode() *Characteristic {
	c := New(haptype.SleepDiscoveryMode, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(1)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewProgramMode creates a new Program Mode characteristic.
func NewProgramMode() *Characteristic {
	c := New(haptype.ProgramMode, FormatUInt8)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	c.Constraints.MinValue = floatPtr(0)
	c.Constraints.MaxValue = floatPtr(2)
	c.Constraints.StepValue = floatPtr(1)
	return c
}

// NewAccessoryFlags creates a new Accessory Flags characteristic.
func NewAccessoryFlags() *Characteristic {
	c := New(haptype.AccessoryFlags, FormatUInt32)
	c.Perms = []Perm{PermPairedRead, PermEvents}
	return c
}
