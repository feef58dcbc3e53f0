// THIS FILE IS AUTO-GENERATED by internal/gen from metadata.json.
// Run "go run ./cmd/gen-hap" from the module root after updating metadata.json to regenerate it.

package accessory

import "github.com/wrenhouse/hap/service"

// NewContactSensor creates a ContactSensor accessory: an Accessory Information
// service plus a primary ContactSensor service.
func NewContactSensor(info Information) *Accessory {
	a := New(info)
	svc := service.NewContactSensor()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewDoor creates a Door accessory: an Accessory Information service plus a primary
// Door service.
func NewDoor(info Information) *Accessory {
	a := New(info)
	svc := service.NewDoor()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewFan creates a Fan accessory: an Accessory Information service plus a primary
// Fan service.
func NewFan(info Information) *Accessory {
	a := New(info)
	svc := service.NewFan()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewGarageDoorOpener creates a GarageDoorOpener accessory: an Accessory
// Information service plus a primary GarageDoorOpener service.
func NewGarageDoorOpener(info Information) *Accessory {
	a := New(info)
	svc := service.NewGarageDoorOpener()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewHumiditySensor creates a HumiditySensor accessory: an Accessory Information
// service plus a primary HumiditySensor service.
func NewHumiditySensor(info Information) *Accessory {
	a := New(info)
	svc := service.NewHumiditySensor()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewLeakSensor creates a LeakSensor accessory: an Accessory Information service
// plus a primary LeakSensor service.
func NewLeakSensor(info Information) *Accessory {
	a := New(info)
	svc := service.NewLeakSensor()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewLightSensor creates a LightSensor accessory: an Accessory Information service
// plus a primary LightSensor service.
func NewLightSensor(info Information) *Accessory {
	a := New(info)
	svc := service.NewLightSensor()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewLightbulb creates a Lightbulb accessory: an Accessory Information service plus
// a primary Lightbulb service.
func NewLightbulb(info Information) *Accessory {
	a := New(info)
	svc := service.NewLightbulb()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewMotionSensor creates a MotionSensor accessory: an Accessory Information
// service plus a primary MotionSensor service.
func NewMotionSensor(info Information) *Accessory {
	a := New(info)
	svc := service.NewMotionSensor()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewOccupancySensor creates an OccupancySensor accessory: an Accessory
// Information service plus a primary OccupancySensor service.
func NewOccupancySensor(info Information) *Accessory {
	a := New(info)
	svc := service.NewOccupancySensor()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewOutlet creates an Outlet accessory: an Accessory Information service plus a
// primary Outlet service.
func NewOutlet(info Information) *Accessory {
	a := New(info)
	svc := service.NewOutlet()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewSmokeSensor creates a SmokeSensor accessory: an Accessory Information service
// plus a primary SmokeSensor service.
func NewSmokeSensor(info Information) *Accessory {
	a := New(info)
	svc := service.NewSmokeSensor()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewStatelessProgrammableSwitch creates a StatelessProgrammableSwitch accessory:
// an Accessory Information service plus a primary StatelessProgrammableSwitch
// service.
func NewStatelessProgrammableSwitch(info Information) *Accessory {
	a := New(info)
	svc := service.NewStatelessProgrammableSwitch()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewSwitch creates a Switch accessory: an Accessory Information service plus a
// primary Switch service.
func NewSwitch(info Information) *Accessory {
	a := New(info)
	svc := service.NewSwitch()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewTemperatureSensor creates a TemperatureSensor accessory: an Accessory
// Information service plus a primary TemperatureSensor service.
func NewTemperatureSensor(info Information) *Accessory {
	a := New(info)
	svc := service.NewTemperatureSensor()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewThermostat creates a Thermostat accessory: an Accessory Information service
// plus a primary Thermostat service.
func NewThermostat(info Information) *Accessory {
	a := New(info)
	svc := service.NewThermostat()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewWindow creates a Window accessory: an Accessory Information service plus a
// primary Window service.
func NewWindow(info Information) *Accessory {
	a := New(info)
	svc := service.NewWindow()
	svc.Primary = true
	a.AddService(svc)
	return a
}

// NewWindowCovering creates a WindowCovering accessory: an Accessory Information
// service plus a primary WindowCovering service.
func NewWindowCovering(info Information) *Accessory {
	a := New(info)
	svc := service.NewWindowCovering()
	svc.Primary = true
	a.AddService(svc)
	return a
}
