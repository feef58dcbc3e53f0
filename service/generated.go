// THIS FILE IS AUTO-GENERATED by internal/gen from metadata.json.
// Run "go run ./cmd/gen-hap" from the module root after updating metadata.json to regenerate it.

package service

import (
	"github.com/wrenhouse/hap/characteristic"
	"github.com/wrenhouse/hap/haptype"
)

// NewAccessoryInformation creates a new AccessoryInformation service with its
// required characteristics present and its optional characteristics absent by
// default.
func NewAccessoryInformation() *Service {
	s := New(haptype.AccessoryInformation)
	s.AddRequired(characteristic.NewIdentify())
	s.AddRequired(characteristic.NewManufacturer())
	s.AddRequired(characteristic.NewModel())
	s.AddRequired(characteristic.NewName())
	s.AddRequired(characteristic.NewSerialNumber())
	s.AddRequired(characteristic.NewFirmwareRevision())
	return s
}

// NewLightbulb creates a new Lightbulb service with its required characteristics
// present and its optional characteristics absent by default.
func NewLightbulb() *Service {
	s := New(haptype.Lightbulb)
	s.AddRequired(characteristic.NewOn())
	s.AddOptional(characteristic.NewBrightness())
	s.AddOptional(characteristic.NewHue())
	s.AddOptional(characteristic.NewSaturation())
	s.AddOptional(characteristic.NewColorTemperature())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewSwitch creates a new Switch service with its required characteristics present
// and its optional characteristics absent by default.
func NewSwitch() *Service {
	s := New(haptype.Switch)
	s.AddRequired(characteristic.NewOn())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewOutlet creates a new Outlet service with its required characteristics present
// and its optional characteristics absent by default.
func NewOutlet() *Service {
	s := New(haptype.Outlet)
	s.AddRequired(characteristic.NewOn())
	s.AddRequired(characteristic.NewInUse())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewThermostat creates a new Thermostat service with its required characteristics
// present and its optional characteristics absent by default.
func NewThermostat() *Service {
	s := New(haptype.Thermostat)
	s.AddRequired(characteristic.NewCurrentHeatingCoolingState())
	s.AddRequired(characteristic.NewTargetHeatingCoolingState())
	s.AddRequired(characteristic.NewCurrentTemperature())
	s.AddRequired(characteristic.NewTargetTemperature())
	s.AddRequired(characteristic.NewTemperatureDisplayUnits())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewTemperatureSensor creates a new TemperatureSensor service with its required
// characteristics present and its optional characteristics absent by default.
func NewTemperatureSensor() *Service {
	s := New(haptype.TemperatureSensor)
	s.AddRequired(characteristic.NewCurrentTemperature())
	s.AddOptional(characteristic.NewStatusLowBattery())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewHumiditySensor creates a new HumiditySensor service with its required
// characteristics present and its optional characteristics absent by default.
func NewHumiditySensor() *Service {
	s := New(haptype.HumiditySensor)
	s.AddRequired(characteristic.NewCurrentRelativeHumidity())
	s.AddOptional(characteristic.NewStatusLowBattery())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewLightSensor creates a new LightSensor service with its required
// characteristics present and its optional characteristics absent by default.
func NewLightSensor() *Service {
	s := New(haptype.LightSensor)
	s.AddRequired(characteristic.NewCurrentAmbientLightLevel())
	s.AddOptional(characteristic.NewStatusLowBattery())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewMotionSensor creates a new MotionSensor service with its required
// characteristics present and its optional characteristics absent by default.
func NewMotionSensor() *Service {
	s := New(haptype.MotionSensor)
	s.AddRequired(characteristic.NewMotionDetected())
	s.AddOptional(characteristic.NewStatusLowBattery())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewContactSensor creates a new ContactSensor service with its required
// characteristics present and its optional characteristics absent by default.
func NewContactSensor() *Service {
	s := New(haptype.ContactSensor)
	s.AddRequired(characteristic.NewContactSensorState())
	s.AddOptional(characteristic.NewStatusLowBattery())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewOccupancySensor creates a new OccupancySensor service with its required
// characteristics present and its optional characteristics absent by default.
func NewOccupancySensor() *Service {
	s := New(haptype.OccupancySensor)
	s.AddRequired(characteristic.NewOccupancyDetected())
	s.AddOptional(characteristic.NewStatusLowBattery())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewSmokeSensor creates a new SmokeSensor service with its required
// characteristics present and its optional characteristics absent by default.
func NewSmokeSensor() *Service {
	s := New(haptype.SmokeSensor)
	s.AddRequired(characteristic.NewSmokeDetected())
	s.AddOptional(characteristic.NewStatusLowBattery())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewLeakSensor creates a new LeakSensor service with its required characteristics
// present and its optional characteristics absent by default.
func NewLeakSensor() *Service {
	s := New(haptype.LeakSensor)
	s.AddRequired(characteristic.NewLeakDetected())
	s.AddOptional(characteristic.NewStatusLowBattery())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewLockManagement creates a new LockManagement service with its required
// characteristics present and its optional characteristics absent by default.
func NewLockManagement() *Service {
	s := New(haptype.LockManagement)
	s.AddRequired(characteristic.NewLockControlPoint())
	s.AddRequired(characteristic.NewVersion())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewLockMechanism creates a new LockMechanism service with its required
// characteristics present and its optional characteristics absent by default.
func NewLockMechanism() *Service {
	s := New(haptype.LockMechanism)
	s.AddRequired(characteristic.NewLockCurrentState())
	s.AddRequired(characteristic.NewLockTargetState())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewDoorbell creates a new Doorbell service with its required characteristics
// present and its optional characteristics absent by default.
func NewDoorbell() *Service {
	s := New(haptype.Doorbell)
	s.AddRequired(characteristic.NewProgrammableSwitchEvent())
	s.AddOptional(characteristic.NewVolume())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewGarageDoorOpener creates a new GarageDoorOpener service with its required
// characteristics present and its optional characteristics absent by default.
func NewGarageDoorOpener() *Service {
	s := New(haptype.GarageDoorOpener)
	s.AddRequired(characteristic.NewCurrentDoorState())
	s.AddRequired(characteristic.NewTargetDoorState())
	s.AddRequired(characteristic.NewObstructionDetected())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewBatteryService creates a new BatteryService service with its required
// characteristics present and its optional characteristics absent by default.
func NewBatteryService() *Service {
	s := New(haptype.BatteryService)
	s.AddRequired(characteristic.NewBatteryLevel())
	s.AddRequired(characteristic.NewChargingState())
	s.AddRequired(characteristic.NewStatusLowBattery())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewFan creates a new Fan service with its required characteristics present and
// its optional characteristics absent by default.
func NewFan() *Service {
	s := New(haptype.Fan)
	s.AddRequired(characteristic.NewActive())
	s.AddOptional(characteristic.NewRotationSpeed())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewWindowCovering creates a new WindowCovering service with its required
// characteristics present and its optional characteristics absent by default.
func NewWindowCovering() *Service {
	s := New(haptype.WindowCovering)
	s.AddRequired(characteristic.NewCurrentPosition())
	s.AddRequired(characteristic.NewTargetPosition())
	s.AddRequired(characteristic.NewPositionState())
	s.AddOptional(characteristic.NewHoldPosition())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewWindow creates a new Window service with its required characteristics present
// and its optional characteristics absent by default.
func NewWindow() *Service {
	s := New(haptype.Window)
	s.AddRequired(characteristic.NewCurrentPosition())
	s.AddRequired(characteristic.NewTargetPosition())
	s.AddRequired(characteristic.NewPositionState())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewDoor creates a new Door service with its required characteristics present and
// its optional characteristics absent by default.
func NewDoor() *Service {
	s := New(haptype.Door)
	s.AddRequired(characteristic.NewCurrentPosition())
	s.AddRequired(characteristic.NewTargetPosition())
	s.AddRequired(characteristic.NewPositionState())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewFilterMaintenance creates a new FilterMaintenance service with its required
// characteristics present and its optional characteristics absent by default.
func NewFilterMaintenance() *Service {
	s := New(haptype.FilterMaintenance)
	s.AddRequired(characteristic.NewFilterChangeIndication())
	s.AddOptional(characteristic.NewFilterLifeLevel())
	s.AddOptional(characteristic.NewResetFilterIndication())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewFaucet creates a new Faucet service with its required characteristics present
// and its optional characteristics absent by default.
func NewFaucet() *Service {
	s := New(haptype.Faucet)
	s.AddRequired(characteristic.NewActive())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewSpeaker creates a new Speaker service with its required characteristics
// present and its optional characteristics absent by default.
func NewSpeaker() *Service {
	s := New(haptype.Speaker)
	s.AddRequired(characteristic.NewMute())
	s.AddOptional(characteristic.NewVolume())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewMicrophone creates a new Microphone service with its required characteristics
// present and its optional characteristics absent by default.
func NewMicrophone() *Service {
	s := New(haptype.Microphone)
	s.AddRequired(characteristic.NewMute())
	s.AddOptional(characteristic.NewVolume())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewServiceLabel creates a new ServiceLabel service with its required
// characteristics present and its optional characteristics absent by default.
func NewServiceLabel() *Service {
	s := New(haptype.ServiceLabel)
	s.AddRequired(characteristic.NewServiceLabelNamespace())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewSlat creates a new Slat service with its required characteristics present and
// its optional characteristics absent by default.
func NewSlat() *Service {
	s := New(haptype.Slat)
	s.AddRequired(characteristic.NewCurrentSlatState())
	s.AddRequired(characteristic.NewSlatType())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewIrrigationSystem creates a new IrrigationSystem service with its required
// characteristics present and its optional characteristics absent by default.
func NewIrrigationSystem() *Service {
	s := New(haptype.IrrigationSystem)
	s.AddRequired(characteristic.NewActive())
	s.AddRequired(characteristic.NewProgramMode())
	s.AddRequired(characteristic.NewInUse())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewTelevision creates a new Television service with its required characteristics
// present and its optional characteristics absent by default.
func NewTelevision() *Service {
	s := New(haptype.Television)
	s.AddRequired(characteristic.NewActive())
	s.AddRequired(characteristic.NewConfiguredName())
	s.AddRequired(characteristic.NewSleepDiscoveryMode())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewStatelessProgrammableSwitch creates a new StatelessProgrammableSwitch service
// with its required characteristics present and its optional characteristics
// absent by default.
func NewStatelessProgrammableSwitch() *Service {
	s := New(haptype.StatelessProgrammableSwitch)
	s.AddRequired(characteristic.NewProgrammableSwitchEvent())
	s.AddOptional(characteristic.NewName())
	return s
}

// NewCameraRTPStreamManagement creates a new CameraRTPStreamManagement service with
// its required characteristics present and its optional characteristics absent by
// default.
func NewCameraRTPStreamManagement() *Service {
	s := New(haptype.CameraRTPStreamManagement)
	s.AddRequired(characteristic.NewActive())
	s.AddOptional(characteristic.NewName())
	return s
}
