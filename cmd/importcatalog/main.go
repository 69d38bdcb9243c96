// Command importcatalog loads a product catalog workbook into the database.
// Usage:
//
//	go run ./cmd/importcatalog -file catalog.xlsx
//	go run ./cmd/importcatalog -template catalog_template.xlsx
//	go run ./cmd/importcatalog -export catalog_export.xlsx
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"billdesk/internal/catalog"
	"billdesk/internal/config"
	"billdesk/internal/domain"
	"billdesk/internal/repository/postgres"
	"billdesk/internal/service"
)

const pageSize = 500

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	file := flag.String("file", "", "catalog workbook (.xlsx) to import")
	template := flag.String("template", "", "write an empty catalog workbook to this path and exit")
	export := flag.String("export", "", "write the stored catalog to this workbook path and exit")
	flag.Parse()

	if *template != "" {
		data, err := catalog.Template()
		if err != nil {
			return err
		}
		if err := os.WriteFile(*template, data, 0o644); err != nil {
			return fmt.Errorf("write template: %w", err)
		}
		log.Printf("wrote catalog template to %s", *template)
		return nil
	}

	if *file == "" && *export == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	repo := postgres.NewProductRepo(db)
	ctx := context.Background()

	if *export != "" {
		var all []domain.Product
		for offset := 0; ; offset += pageSize {
			page, total, err := repo.List(ctx, "", offset, pageSize)
			if err != nil {
				return fmt.Errorf("list products: %w", err)
			}
			all = append(all, page...)
			if len(page) == 0 || len(all) >= total {
				break
			}
		}
		data, err := catalog.Export(all)
		if err != nil {
			return err
		}
		if err := os.WriteFile(*export, data, 0o644); err != nil {
			return fmt.Errorf("write export: %w", err)
		}
		log.Printf("exported %d products to %s", len(all), *export)
		return nil
	}

	f, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	result, err := service.NewProductService(repo).Import(ctx, f)
	if err != nil {
		return fmt.Errorf("import catalog: %w", err)
	}
	log.Printf("imported %d products (%d failed) from %s", result.Imported, result.Failed, *file)
	return nil
}
