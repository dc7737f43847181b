package main

import (
	"context"

	"github.com/pkg/errors"

	"github.com/oksasatya/go-mongo-shop/internal/container"
	"github.com/oksasatya/go-mongo-shop/internal/domain/entity"
	repo "github.com/oksasatya/go-mongo-shop/internal/domain/repository"
)

type sampleProduct struct {
	name, desc, image, category string
	price, rating               float64
}

var catalog = []sampleProduct{
	{"MacBook Pro 14", "M3 Pro, 18GB, 512GB SSD", "https://images.example.com/macbook-pro-14.jpg", entity.CategoryLaptop, 1999, 4.8},
	{"ThinkPad X1 Carbon", "Intel Core Ultra 7, 32GB, 1TB SSD", "https://images.example.com/x1-carbon.jpg", entity.CategoryLaptop, 1749, 4.6},
	{"Dell XPS 13", "13.4in OLED, 16GB, 512GB SSD", "https://images.example.com/xps-13.jpg", entity.CategoryLaptop, 1299, 4.4},
	{"Canon EOS R6 Mark II", "24.2MP full-frame mirrorless body", "https://images.example.com/eos-r6.jpg", entity.CategoryCamera, 2499, 4.7},
	{"Sony A7 IV", "33MP full-frame hybrid camera", "https://images.example.com/a7iv.jpg", entity.CategoryCamera, 2498, 4.8},
	{"Fujifilm X-T5", "40MP APS-C with film simulations", "https://images.example.com/xt5.jpg", entity.CategoryCamera, 1699, 4.6},
	{"DJI Mavic 3 Classic", "4/3 CMOS Hasselblad camera, 46 min flight", "https://images.example.com/mavic-3.jpg", entity.CategoryDrone, 1599, 4.7},
	{"DJI Mini 4 Pro", "Under 249g, omnidirectional sensing", "https://images.example.com/mini-4.jpg", entity.CategoryDrone, 759, 4.6},
	{"Autel EVO Lite+", "1in sensor, 6K video", "https://images.example.com/evo-lite.jpg", entity.CategoryDrone, 1149, 4.3},
}

type seedStats struct {
	productsCreated int64
}

// seed upserts the sample catalog by name and makes adminEmail an admin. Running it twice changes nothing.
func seed(ctx context.Context, repos container.Repositories, adminEmail string) (seedStats, error) {
	var stats seedStats
	for _, p := range catalog {
		patch := repo.Patch{
			Set: map[string]any{
				"desc":     p.desc,
				"image":    p.image,
				"category": p.category,
				"price":    p.price,
				"rating":   p.rating,
			},
			SetOnInsert: map[string]any{"comments": []any{}},
		}
		res, err := repos.Products.UpdateOne(ctx, repo.Filter{"name": p.name}, patch, repo.UpdateOptions{Upsert: true})
		if err != nil {
			return stats, errors.Wrapf(err, "seed product %q", p.name)
		}
		stats.productsCreated += res.UpsertedCount
	}

	if adminEmail != "" {
		patch := repo.Patch{
			Set:         map[string]any{"role": string(entity.RoleAdmin)},
			SetOnInsert: map[string]any{"isPaidUser": false},
		}
		if _, err := repos.Users.UpdateOne(ctx, repo.ByEmail(adminEmail), patch, repo.UpdateOptions{Upsert: true}); err != nil {
			return stats, errors.Wrap(err, "seed admin")
		}
	}
	return stats, nil
}
