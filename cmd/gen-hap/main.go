// Command gen-hap regenerates the typed characteristic, service, accessory,
// category and haptype modules from internal/gen/metadata.json. It is run by hand
// from the module root (go run ./cmd/gen-hap); no go:generate directive invokes it,
// and nothing runs it at process runtime.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/wrenhouse/hap/internal/gen"
)

func main() {
	metadata := flag.String("metadata", "internal/gen/metadata.json", "path to the canonical HAP metadata document")
	hashFile := flag.String("hash", "internal/gen/metadata_hash", "path to the cached metadata hash")
	outRoot := flag.String("out", ".", "module root under which category/, haptype/, characteristic/, service/, accessory/ live")
	flag.Parse()

	changed, err := gen.Generate(*metadata, *hashFile, *outRoot)
	if err != nil {
		log.Fatalf("gen-hap: %v", err)
	}
	if !changed {
		log.Printf("gen-hap: metadata unchanged, nothing regenerated")
		return
	}
	log.Printf("gen-hap: regenerated modules under %s", filepath.Clean(*outRoot))
}
