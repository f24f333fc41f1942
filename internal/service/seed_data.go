package service

import (
	"github.com/phrazzld/shop-api/internal/domain"
	"github.com/shopspring/decimal"
)

type seedProduct struct {
	title       string
	description string
	price       string
	stock       int
	sizes       []string
	gender      domain.Gender
	tags        []string
	images      []string
}

var seedProducts = []seedProduct{
	{
		title:       "Men's Chill Crew Neck Sweatshirt",
		description: "Premium heavyweight fleece with a relaxed fit and ribbed cuffs.",
		price:       "75",
		stock:       7,
		sizes:       []string{"XS", "S", "M", "L", "XL", "XXL"},
		gender:      domain.GenderMen,
		tags:        []string{"sweatshirt"},
		images:      []string{"1740176-00-A_0_2000.jpg", "1740176-00-A_1.jpg"},
	},
	{
		title:       "Men's Quilted Shirt Jacket",
		description: "Water-resistant quilted shell with snap closures.",
		price:       "200",
		stock:       5,
		sizes:       []string{"XS", "S", "M", "XL", "XXL"},
		gender:      domain.GenderMen,
		tags:        []string{"jacket"},
		images:      []string{"1740507-00-A_0_2000.jpg", "1740507-00-A_1.jpg"},
	},
	{
		title:       "Men's Raven Lightweight Zip Up Bomber Jacket",
		description: "Lightweight bomber with a two-way zipper and matte finish.",
		price:       "130",
		stock:       10,
		sizes:       []string{"S", "M", "L", "XL", "XXL"},
		gender:      domain.GenderMen,
		tags:        []string{"shirt"},
		images:      []string{"1740250-00-A_0_2000.jpg", "1740250-00-A_1.jpg"},
	},
	{
		title:       "Women's Cropped Puffer Jacket",
		description: "Cropped puffer with a high collar and quilted panels.",
		price:       "225",
		stock:       85,
		sizes:       []string{"XS", "S", "M"},
		gender:      domain.GenderWomen,
		tags:        []string{"hoodie"},
		images:      []string{"1740535-00-A_0_2000.jpg", "1740535-00-A_1.jpg"},
	},
	{
		title:       "Women's Chill Half Zip Cropped Hoodie",
		description: "Soft cotton blend hoodie with a half zip and cropped hem.",
		price:       "130",
		stock:       10,
		sizes:       []string{"XS", "S", "M", "XXL"},
		gender:      domain.GenderWomen,
		tags:        []string{"hoodie"},
		images:      []string{"1740226-00-A_0_2000.jpg", "1740226-00-A_1.jpg"},
	},
	{
		title:       "Kids Cybertruck Long Sleeve Tee",
		description: "Long sleeve cotton tee with a printed graphic on the chest.",
		price:       "30",
		stock:       10,
		sizes:       []string{"XS", "S", "M"},
		gender:      domain.GenderKid,
		tags:        []string{"shirt"},
		images:      []string{"1742694-00-A_1_2000.jpg", "1742694-00-A_2.jpg"},
	},
	{
		title:       "Made on Earth by Humans Onesie",
		description: "Organic cotton onesie with snap closures.",
		price:       "25",
		stock:       12,
		sizes:       []string{"XS", "S"},
		gender:      domain.GenderKid,
		tags:        []string{"shirt"},
		images:      []string{"1473809-00-A_1_2000.jpg", "1473809-00-A_alt.jpg"},
	},
	{
		title:       "Relaxed T Logo Hat",
		description: "Six-panel cotton twill cap with an adjustable strap.",
		price:       "30",
		stock:       11,
		sizes:       []string{},
		gender:      domain.GenderUnisex,
		tags:        []string{"hat"},
		images:      []string{"1657932-00-A_0_2000.jpg", "1657932-00-A_1.jpg"},
	},
}

// SeedCatalog returns the products written by a seed run, in insertion order.
func SeedCatalog() []ProductInput {
	inputs := make([]ProductInput, 0, len(seedProducts))
	for _, sp := range seedProducts {
		title := sp.title
		description := sp.description
		price := decimal.RequireFromString(sp.price)
		stock := sp.stock
		sizes := append([]string{}, sp.sizes...)
		gender := sp.gender
		tags := append([]string{}, sp.tags...)

		inputs = append(inputs, ProductInput{
			Details: domain.ProductDetails{
				Title:       &title,
				Description: &description,
				Price:       &price,
				Stock:       &stock,
				Sizes:       &sizes,
				Gender:      &gender,
				Tags:        &tags,
			},
			Images: append([]string{}, sp.images...),
		})
	}
	return inputs
}
