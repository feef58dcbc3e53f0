package gen

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"text/template"
)

// formatGo maps a metadata Format string to the Go characteristic/value format.
var formatGo = map[string]string{
	"bool":   "FormatBool",
	"uint8":  "FormatUInt8",
	"uint16": "FormatUInt16",
	"uint32": "FormatUInt32",
	"uint64": "FormatUInt64",
	"int32":  "FormatInt32",
	"float":  "FormatFloat",
	"string": "FormatString",
	"tlv8":   "FormatTlv8",
	"data":   "FormatData",
}

var permGo = map[string]string{
	"read":    "PermPairedRead",
	"write":   "PermPairedWrite",
	"cnotify": "PermEvents",
}

// charView is the template-facing projection of a CharacteristicDef.
type charView struct {
	GoName string
	UUID   string
	Format string
	Unit   string
	Perms  []string
	Min    *float64
	Max    *float64
	Step   *float64
	MaxLen *int
}

// svcView is the template-facing projection of a ServiceDef.
type svcView struct {
	GoName     string
	UUID       string
	Required   []string // Go constructor function names, e.g. "NewOn"
	Optional   []string
	Excluded   bool
}

// Generate reads metadataPath and writes the generated category, haptype,
// characteristic, service and accessory modules under outRoot. It is gated by the
// SHA-256 hash recorded at hashPath: if the metadata is unchanged, Generate returns
// (false, nil) without touching any file on disk.
func Generate(metadataPath, hashPath, outRoot string) (bool, error) {
	upToDate, err := UpToDate(metadataPath, hashPath)
	if err != nil {
		return false, err
	}
	if upToDate {
		return false, nil
	}

	meta, err := Load(metadataPath)
	if err != nil {
		return false, err
	}

	if err := generateCategory(meta, filepath.Join(outRoot, "category", "category_generated.go")); err != nil {
		return false, err
	}
	if err := generateHapType(meta, filepath.Join(outRoot, "haptype", "haptype_generated.go")); err != nil {
		return false, err
	}
	if err := generateCharacteristics(meta, filepath.Join(outRoot, "characteristic", "generated.go")); err != nil {
		return false, err
	}
	if err := generateServices(meta, filepath.Join(outRoot, "service", "generated.go")); err != nil {
		return false, err
	}
	if err := generateAccessories(meta, filepath.Join(outRoot, "accessory", "generated.go")); err != nil {
		return false, err
	}

	if err := WriteHash(metadataPath, hashPath); err != nil {
		return false, err
	}
	return true, nil
}

func writeFormatted(path string, buf *bytes.Buffer) error {
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Fall back to the unformatted source rather than losing output; a
		// template bug should fail loudly elsewhere, not silently drop files.
		formatted = buf.Bytes()
	}
	return os.WriteFile(path, formatted, 0o644)
}

const categoryTmpl = `// THIS FILE IS AUTO-GENERATED by internal/gen from metadata.json.
// Run "go run ./cmd/gen-hap" from the module root after updating metadata.json to regenerate it.

package category

// Category is a HAP accessory category, advertised in the mDNS "ci" TXT record.
type Category int

const (
{{- range .Categories}}
	{{.GoName}} Category = {{.Number}}
{{- end}}
)

var names = map[Category]string{
{{- range .Categories}}
	{{.GoName}}: "{{.Name}}",
{{- end}}
}

// String returns the metadata document's Name for c, or "Unknown" if c is not a
// recognized category.
func (c Category) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "Unknown"
}
`

func generateCategory(meta *Metadata, path string) error {
	type row struct {
		GoName string
		Name   string
		Number int
	}
	var rows []row
	for _, c := range meta.Categories {
		rows = append(rows, row{GoName: goIdent(c.Name), Name: c.Name, Number: c.Number})
	}
	tmpl := template.Must(template.New("category").Parse(categoryTmpl))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Categories []row }{rows}); err != nil {
		return err
	}
	return writeFormatted(path, &buf)
}

const hapTypeTmpl = `// THIS FILE IS AUTO-GENERATED by internal/gen from metadata.json.
// Run "go run ./cmd/gen-hap" from the module root after updating metadata.json to regenerate it.

package haptype

// HapType identifies a HAP characteristic or service kind.
type HapType int

const (
	Unknown HapType = iota
{{- range .Types}}
	{{.GoName}}
{{- end}}
)

var shortUUIDs = map[HapType]string{
{{- range .Types}}
	{{.GoName}}: "{{.Short}}",
{{- end}}
}

var names = map[HapType]string{
{{- range .Types}}
	{{.GoName}}: "{{.Name}}",
{{- end}}
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
`

func generateHapType(meta *Metadata, path string) error {
	type row struct {
		GoName string
		Name   string
		Short  string
	}
	var rows []row
	seen := map[string]bool{}
	add := func(name, uuid string) {
		goName := goIdent(name)
		if seen[goName] {
			return
		}
		seen[goName] = true
		rows = append(rows, row{GoName: goName, Name: name, Short: shortenUUID(uuid)})
	}
	for _, c := range meta.Characteristics {
		add(c.Name, c.UUID)
	}
	for _, s := range meta.Services {
		add(s.Name, s.UUID)
	}
	tmpl := template.Must(template.New("haptype").Parse(hapTypeTmpl))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Types []row }{rows}); err != nil {
		return err
	}
	return writeFormatted(path, &buf)
}

const characteristicTmpl = `// THIS FILE IS AUTO-GENERATED by internal/gen from metadata.json.
// Run "go run ./cmd/gen-hap" from the module root after updating metadata.json to regenerate it.
//
// Per the generator design, every characteristic is the same Go type
// (Characteristic) parameterized by format, unit, permissions and constraints; the
// generator emits one small constructor per characteristic rather than one type per
// characteristic.

package characteristic

import "github.com/wrenhouse/hap/haptype"

{{range .Chars}}
// New{{.GoName}} creates a new {{.Name}} characteristic.
func New{{.GoName}}() *Characteristic {
	c := New(haptype.{{.GoName}}, {{.Format}})
	c.Perms = []Perm{ {{range .Perms}}{{.}}, {{end}} }
{{- if .Unit}}
	c.Unit = Unit{{.Unit}}
{{- end}}
{{- if .Min}}
	c.Constraints.MinValue = floatPtr({{.Min}})
{{- end}}
{{- if .Max}}
	c.Constraints.MaxValue = floatPtr({{.Max}})
{{- end}}
{{- if .Step}}
	c.Constraints.StepValue = floatPtr({{.Step}})
{{- end}}
{{- if .MaxLen}}
	c.Constraints.MaxLen = intPtr({{.MaxLen}})
{{- end}}
	return c
}
{{end}}
`

func generateCharacteristics(meta *Metadata, path string) error {
	var chars []charView
	for _, c := range meta.Characteristics {
		v := charView{
			GoName: goIdent(c.Name),
			UUID:   c.UUID,
			Format: formatGo[c.Format],
		}
		if c.Unit != "" {
			v.Unit = goIdent(c.Unit)
		}
		for _, p := range c.Permissions {
			v.Perms = append(v.Perms, permGo[p])
		}
		if c.Constraints != nil {
			v.Min = c.Constraints.MinValue
			v.Max = c.Constraints.MaxValue
			v.Step = c.Constraints.StepValue
			v.MaxLen = c.Constraints.MaxLen
		}
		chars = append(chars, v)
	}
	tmpl := template.Must(template.New("characteristic").Parse(characteristicTmpl))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Chars []charView }{chars}); err != nil {
		return err
	}
	return writeFormatted(path, &buf)
}

const serviceTmpl = `// THIS FILE IS AUTO-GENERATED by internal/gen from metadata.json.
// Run "go run ./cmd/gen-hap" from the module root after updating metadata.json to regenerate it.

package service

import (
	"github.com/wrenhouse/hap/characteristic"
	"github.com/wrenhouse/hap/haptype"
)

{{range .Services}}
// New{{.GoName}} creates a new {{.GoName}} service with its required characteristics
// present and its optional characteristics absent by default.
func New{{.GoName}}() *Service {
	s := New(haptype.{{.GoName}})
{{- range .Required}}
	s.AddRequired(characteristic.{{.}}())
{{- end}}
{{- range .Optional}}
	s.AddOptional(characteristic.{{.}}())
{{- end}}
	return s
}
{{end}}
`

func generateServices(meta *Metadata, path string) error {
	byName := map[string]CharacteristicDef{}
	for _, c := range meta.Characteristics {
		byName[c.Name] = c
	}
	var views []svcView
	for _, s := range meta.Services {
		v := svcView{GoName: goIdent(s.Name), UUID: s.UUID, Excluded: excludedFromAccessoryGeneration[s.Name]}
		for _, rc := range s.RequiredCharacteristics {
			v.Required = append(v.Required, "New"+goIdent(byName[rc].Name))
		}
		for _, oc := range s.OptionalCharacteristics {
			v.Optional = append(v.Optional, "New"+goIdent(byName[oc].Name))
		}
		views = append(views, v)
	}
	tmpl := template.Must(template.New("service").Parse(serviceTmpl))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Services []svcView }{views}); err != nil {
		return err
	}
	return writeFormatted(path, &buf)
}

const accessoryTmpl = `// THIS FILE IS AUTO-GENERATED by internal/gen from metadata.json.
// Run "go run ./cmd/gen-hap" from the module root after updating metadata.json to regenerate it.

package accessory

import "github.com/wrenhouse/hap/service"

{{range .Services}}
// New{{.GoName}} creates a {{.GoName}} accessory: an Accessory Information service
// plus a primary {{.GoName}} service.
func New{{.GoName}}(info Information) *Accessory {
	a := New(info)
	svc := service.New{{.GoName}}()
	svc.Primary = true
	a.AddService(svc)
	return a
}
{{end}}
`

func generateAccessories(meta *Metadata, path string) error {
	type row struct{ GoName string }
	var rows []row
	var names []string
	for _, s := range meta.Services {
		if excludedFromAccessoryGeneration[s.Name] {
			continue
		}
		names = append(names, s.Name)
	}
	sort.Strings(names)
	for _, n := range names {
		rows = append(rows, row{GoName: goIdent(n)})
	}
	tmpl := template.Must(template.New("accessory").Parse(accessoryTmpl))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct{ Services []row }{rows}); err != nil {
		return err
	}
	return writeFormatted(path, &buf)
}
