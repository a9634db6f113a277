// devservices is a local stand-in for the external catalog and media
// services, serving both wire contracts from a seeded sqlite file so the
// storefront can run without the real backends. Point CATALOG_URL and
// MEDIA_URL at it during development.
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"emeraldshop/internal/config"
	"emeraldshop/internal/domain"
)

type productRow struct {
	ID              string `db:"id"`
	Title           string `db:"title"`
	Slug            string `db:"slug"`
	Status          string `db:"status"`
	Description     string `db:"description"`
	Brand           string `db:"brand"`
	DefaultCurrency string `db:"default_currency"`
	CreatedAt       string `db:"created_at"`
	UpdatedAt       string `db:"updated_at"`
}

type variantRow struct {
	ID          string `db:"id"`
	SKU         string `db:"sku"`
	Title       string `db:"title"`
	Price       string `db:"price"`
	CompareAt   string `db:"compare_at"`
	Barcode     string `db:"barcode"`
	WeightGrams int    `db:"weight_grams"`
}

type imageRow struct {
	URL string `db:"url"`
	Alt string `db:"alt"`
}

func main() {
	cfg := config.Load()

	db, err := openDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New()

	// Catalog contract
	app.Get("/catalog/products/:id", func(c *fiber.Ctx) error {
		var p productRow
		err := db.Get(&p, `
		  SELECT id, title, slug, status,
		         COALESCE(description,'') AS description,
		         COALESCE(brand,'') AS brand,
		         default_currency, created_at, COALESCE(updated_at,'') AS updated_at
		  FROM products WHERE id = ?`, c.Params("id"))
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "Not found"})
		}

		var rows []variantRow
		if err := db.Select(&rows, `
		  SELECT id, sku, title, price,
		         COALESCE(compare_at,'') AS compare_at,
		         COALESCE(barcode,'') AS barcode,
		         COALESCE(weight_grams,0) AS weight_grams
		  FROM variants WHERE product_id = ? ORDER BY position`, p.ID); err != nil {
			return err
		}

		variants := make([]domain.Variant, len(rows))
		for i, r := range rows {
			variants[i] = domain.Variant{
				ID: r.ID, SKU: r.SKU, Title: r.Title, Price: r.Price,
				CompareAt: r.CompareAt, Barcode: r.Barcode, WeightGrams: r.WeightGrams,
			}
		}
		return c.JSON(domain.Product{
			ID: p.ID, Title: p.Title, Slug: p.Slug, Status: p.Status,
			Description: p.Description, Brand: p.Brand,
			DefaultCurrency: p.DefaultCurrency,
			CreatedAt:       p.CreatedAt, UpdatedAt: p.UpdatedAt,
			Variants: variants,
		})
	})

	// Media contract: relative paths, resolved by the storefront
	app.Get("/products/:id/images", func(c *fiber.Ctx) error {
		var rows []imageRow
		if err := db.Select(&rows, `
		  SELECT url, COALESCE(alt,'') AS alt
		  FROM images WHERE product_id = ? ORDER BY position`, c.Params("id")); err != nil {
			return err
		}
		items := make([]fiber.Map, len(rows))
		for i, r := range rows {
			items[i] = fiber.Map{"url": r.URL, "alt": r.Alt}
		}
		return c.JSON(fiber.Map{"items": items})
	})

	app.Static("/media", cfg.MediaDir)

	log.Printf("[devservices] serving catalog + media on :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func openDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS products(
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  slug TEXT NOT NULL UNIQUE,
  status TEXT NOT NULL CHECK (status IN ('draft','active','archived')),
  description TEXT,
  brand TEXT,
  default_currency TEXT NOT NULL DEFAULT 'USD',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

-- Prices stay TEXT end to end; the storefront parses them.
CREATE TABLE IF NOT EXISTS variants(
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  sku TEXT NOT NULL,
  title TEXT NOT NULL,
  price TEXT NOT NULL,
  compare_at TEXT,
  barcode TEXT,
  weight_grams INTEGER CHECK (weight_grams >= 0),
  position INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_variants_product ON variants(product_id, position);

CREATE TABLE IF NOT EXISTS images(
  product_id TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  url TEXT NOT NULL,
  alt TEXT,
  position INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (product_id, url)
);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo products/variants/images")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,title,slug,status,description,brand,default_currency) VALUES
	  ('tee-001','Organic Cotton Tee','organic-cotton-tee','active','Mid-weight 180gsm tee, garment dyed.','Verdant','USD'),
	  ('mug-001','Stoneware Mug','stoneware-mug','active','Hand-glazed 350ml mug.',NULL,'USD'),
	  ('cap-001','Cordura Cap','cordura-cap','draft',NULL,'Verdant','EUR')`)

	tx.MustExec(`INSERT INTO variants(id,product_id,sku,title,price,compare_at,barcode,weight_grams,position) VALUES
	  ('v-tee-blk-m','tee-001','TEE-BLK-M','Black / M','19.99',NULL,'0012345678905',210,0),
	  ('v-tee-blk-l','tee-001','TEE-BLK-L','Black / L','21.99','29.99',NULL,225,1),
	  ('v-tee-ecr-m','tee-001','TEE-ECR-M','Ecru / M','9.50',NULL,NULL,210,2),
	  ('v-mug-std','mug-001','MUG-STD','Standard','14.00','12.00',NULL,420,0),
	  ('v-cap-one','cap-001','CAP-ONE','One size','24.00',NULL,NULL,80,0)`)

	tx.MustExec(`INSERT INTO images(product_id,url,alt,position) VALUES
	  ('tee-001','/media/products/tee-001/000001-front.jpg','Front view',0),
	  ('tee-001','/media/products/tee-001/000002-back.jpg','Back view',1),
	  ('tee-001','/media/products/tee-001/000003-detail.jpg',NULL,2),
	  ('mug-001','/media/products/mug-001/000001-main.jpg','Stoneware mug',0)`)

	return tx.Commit()
}
