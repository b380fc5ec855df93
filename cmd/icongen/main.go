// cmd/icongen/main.go
package main

import (
	"log"
	"os"

	"unfold-icons/internal/config"
	"unfold-icons/internal/export"
	"unfold-icons/internal/icon"
)

func main() {
	outDir := config.DefaultOutDir
	if len(os.Args) > 1 {
		outDir = os.Args[1]
	}

	master := icon.Render(config.MasterSize)

	exp := &export.Exporter{OutDir: outDir}
	renditions, err := exp.ExportPNGs(master, config.ExportSizes)
	if err != nil {
		log.Fatal(err)
	}
	if err := exp.ExportICO(renditions, config.ICOSizes); err != nil {
		log.Fatal(err)
	}

	log.Printf("all icons generated in %s", outDir)
}
