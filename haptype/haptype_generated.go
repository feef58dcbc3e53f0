// THIS FILE IS AUTO-GENERATED BY cmd/gen-hap FROM internal/gen/metadata.json.
// DO NOT EDIT BY HAND.

// Package haptype enumerates the HAP characteristic and service type UUIDs known to
// this module, one constant per metadata entry.
package haptype

// HapType identifies a characteristic or service's HAP type.
type HapType int

const (
	Unknown HapType = iota

	Identify
	Manufacturer
	Model
	Name
	SerialNumber
	FirmwareRevision
	On
	Brightness
	Hue
	Saturation
	ColorTemperature
	CurrentTemperature
	TargetTemperature
	CurrentHeatingCoolingState
	TargetHeatingCoolingState
	TemperatureDisplayUnits
	CurrentRelativeHumidity
	TargetRelativeHumidity
	CurrentAmbientLightLevel
	MotionDetected
	ContactSensorState
	OccupancyDetected
	SmokeDetected
	LeakDetected
	LockCurrentState
	LockTargetState
	LockControlPoint
	Version
	CurrentDoorState
	TargetDoorState
	ObstructionDetected
	BatteryLevel
	ChargingState
	StatusLowBattery
	Active
	InUse
	ProgrammableSwitchEvent
	Volume
	Mute
	RotationSpeed
	CurrentPosition
	TargetPosition
	PositionState
	HoldPosition
	FilterChangeIndication
	FilterLifeLevel
	ResetFilterIndication
	ServiceLabelNamespace
	CurrentSlatState
	SlatType
	ConfiguredName
	SleepDiscoveryMode
	ProgramMode
	AccessoryFlags

	AccessoryInformation
	Lightbulb
	Switch
	Outlet
	Thermostat
	TemperatureSensor
	HumiditySensor
	LightSensor
	MotionSensor
	ContactSensor
	OccupancySensor
	SmokeSensor
	LeakSensor
	LockManagement
	LockMechanism
	Doorbell
	GarageDoorOpener
	BatteryService
	Fan
	WindowCovering
	Window
	Door
	FilterMaintenance
	Faucet
	Speaker
	Microphone
	ServiceLabel
	Slat
	IrrigationSystem
	Television
	StatelessProgrammableSwitch
	CameraRTPStreamManagement
)

var names = map[HapType]string{
	Identify:                    "Identify",
	Manufacturer:                "Manufacturer",
	Model:                       "Model",
	Name:                        "Name",
	SerialNumber:                "Serial Number",
	FirmwareRevision:            "Firmware Revision",
	On:                          "On",
	Brightness:                  "Brightness",
	Hue:                         "Hue",
	Saturation:                  "Saturation",
	ColorTemperature:            "Color Temperature",
	CurrentTemperature:          "Current Temperature",
	TargetTemperature:           "Target Temperature",
	CurrentHeatingCoolingState:  "Current Heating Cooling State",
	TargetHeatingCoolingState:   "Target Heating Cooling State",
	TemperatureDisplayUnits:     "Temperature Display Units",
	CurrentRelativeHumidity:     "Current Relative Humidity",
	TargetRelativeHumidity:      "Target Relative Humidity",
	CurrentAmbientLightLevel:    "Current Ambient Light Level",
	MotionDetected:              "Motion Detected",
	ContactSensorState:          "Contact Sensor State",
	OccupancyDetected:           "Occupancy Detected",
	SmokeDetected:               "Smoke Detected",
	LeakDetected:                "Leak Detected",
	LockCurrentState:            "Lock Current State",
	LockTargetState:             "Lock Target State",
	LockControlPoint:            "Lock Control Point",
	Version:                     "Version",
	CurrentDoorState:            "Current Door State",
	TargetDoorState:             "Target Door State",
	ObstructionDetected:         "Obstruction Detected",
	BatteryLevel:                "Battery Level",
	ChargingState:               "Charging State",
	StatusLowBattery:            "Status Low Battery",
	Active:                      "Active",
	InUse:                       "In Use",
	ProgrammableSwitchEvent:     "Programmable Switch Event",
	Volume:                      "Volume",
	Mute:                        "Mute",
	RotationSpeed:               "Rotation Speed",
	CurrentPosition:             "Current Position",
	TargetPosition:              "Target Position",
	PositionState:               "Position State",
	HoldPosition:                "Hold Position",
	FilterChangeIndication:      "Filter Change Indication",
	FilterLifeLevel:             "Filter Life Level",
	ResetFilterIndication:       "Reset Filter Indication",
	ServiceLabelNamespace:       "Service Label Namespace",
	CurrentSlatState:            "Current Slat State",
	SlatType:                    "Slat Type",
	ConfiguredName:              "Configured Name",
	SleepDiscoveryMode:          "Sleep Discovery Mode",
	ProgramMode:                 "Program Mode",
	AccessoryFlags:              "Accessory Flags",
	AccessoryInformation:        "Accessory Information",
	Lightbulb:                   "Lightbulb",
	Switch:                      "Switch",
	Outlet:                      "Outlet",
	Thermostat:                  "Thermostat",
	TemperatureSensor:           "Temperature Sensor",
	HumiditySensor:              "Humidity Sensor",
	LightSensor:                 "Light Sensor",
	MotionSensor:                "Motion Sensor",
	ContactSensor:               "Contact Sensor",
	OccupancySensor:             "Occupancy Sensor",
	SmokeSensor:                 "Smoke Sensor",
	LeakSensor:                  "Leak Sensor",
	LockManagement:              "Lock Management",
	LockMechanism:               "Lock Mechanism",
	Doorbell:                    "Doorbell",
	GarageDoorOpener:            "Garage Door Opener",
	BatteryService:              "Battery Service",
	Fan:                         "Fan",
	WindowCovering:              "Window Covering",
	Window:                      "Window",
	Door:                        "Door",
	FilterMaintenance:           "Filter Maintenance",
	Faucet:                      "Faucet",
	Speaker:                     "Speaker",
	Microphone:                  "Microphone",
	ServiceLabel:                "Service Label",
	Slat:                        "Slat",
	IrrigationSystem:            "Irrigation System",
	Television:                  "Television",
	StatelessProgrammableSwitch: "Stateless Programmable Switch",
	CameraRTPStreamManagement:   "Camera RTP Stream Management",
}

var shortUUIDs = map[HapType]string{
	Identify:                    "14",
	Manufacturer:                "20",
	Model:                       "21",
	Name:                        "23",
	SerialNumber:                "30",
	FirmwareRevision:            "52",
	On:                          "25",
	Brightness:                  "8",
	Hue:                         "13",
	Saturation:                  "2F",
	ColorTemperature:            "CE",
	CurrentTemperature:          "11",
	TargetTemperature:           "35",
	CurrentHeatingCoolingState:  "F",
	TargetHeatingCoolingState:   "33",
	TemperatureDisplayUnits:     "36",
	CurrentRelativeHumidity:     "10",
	TargetRelativeHumidity:      "34",
	CurrentAmbientLightLevel:    "6B",
	MotionDetected:              "22",
	ContactSensorState:          "6A",
	OccupancyDetected:           "71",
	SmokeDetected:               "76",
	LeakDetected:                "70",
	LockCurrentState:            "1D",
	LockTargetState:             "1E",
	LockControlPoint:            "19",
	Version:                     "37",
	CurrentDoorState:            "E",
	TargetDoorState:             "32",
	ObstructionDetected:         "24",
	BatteryLevel:                "68",
	ChargingState:               "8F",
	StatusLowBattery:            "79",
	Active:                      "B0",
	InUse:                       "D2",
	ProgrammableSwitchEvent:     "73",
	Volume:                      "119",
	Mute:                        "11A",
	RotationSpeed:               "29",
	CurrentPosition:             "6D",
	TargetPosition:              "7C",
	PositionState:               "72",
	HoldPosition:                "6F",
	FilterChangeIndication:      "AC",
	FilterLifeLevel:             "AB",
	ResetFilterIndication:       "AD",
	ServiceLabelNamespace:       "CD",
	CurrentSlatState:            "AA",
	SlatType:                    "C0",
	ConfiguredName:              "E3",
	SleepDiscoveryMode:          "E8",
	ProgramMode:                 "D1",
	AccessoryFlags:              "A6",
	AccessoryInformation:        "3E",
	Lightbulb:                   "43",
	Switch:                      "49",
	Outlet:                      "47",
	Thermostat:                  "4A",
	TemperatureSensor:           "8A",
	HumiditySensor:              "82",
	LightSensor:                 "84",
	MotionSensor:                "85",
	ContactSensor:               "80",
	OccupancySensor:             "86",
	SmokeSensor:                 "87",
	LeakSensor:                  "83",
	LockManagement:              "44",
	LockMechanism:               "45",
	Doorbell:                    "121",
	GarageDoorOpener:            "41",
	BatteryService:              "96",
	Fan:                         "40",
	WindowCovering:              "8C",
	Window:                      "8B",
	Door:                        "81",
	FilterMaintenance:           "BA",
	Faucet:                      "D7",
	Speaker:                     "113",
	Microphone:                  "112",
	ServiceLabel:                "CC",
	Slat:                        "B9",
	IrrigationSystem:            "CF",
	Television:                  "D8",
	StatelessProgrammableSwitch: "89",
	CameraRTPStreamManagement:   "110",
}

// ShortUUID returns the shortened form of this type's UUID: the UUID's first
// hyphen-delimited group with leading zeroes trimmed (spec.md §8's shortened-UUID
// rule), the form HAP puts on the wire for any type under the Apple base UUID.
func (t HapType) ShortUUID() string {
	if s, ok := shortUUIDs[t]; ok {
		return s
	}
	return "0"
}

// String returns the type's human-readable HAP name.
func (t HapType) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "Unknown"
}
