package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

//nolint:gochecknoglobals //demo data
var seedData = map[string][]map[string]any{
	EntityProducts: {
		{
			"name":        "NPK Fertilizer 19:19:19",
			"nameHindi":   "एनपीके उर्वरक 19:19:19",
			"description": "Balanced NPK fertilizer for all crops",
			"price":       850,
			"type":        "fertilizer",
			"inStock":     true,
		},
		{
			"name":        "Chlorpyrifos 20% EC",
			"nameHindi":   "क्लोरपायरिफॉस 20% ईसी",
			"description": "Effective insecticide for pest control",
			"price":       320,
			"type":        "pesticide",
			"inStock":     true,
		},
	},
	EntityCrops: {
		{
			"title":       "Cotton Seeds - BT Variety",
			"titleHindi":  "कपास के बीज - बीटी किस्म",
			"description": "High yielding BT cotton seeds",
		},
		{
			"title":       "Wheat Seeds - HD-2967",
			"titleHindi":  "गेहूं के बीज - एचडी-2967",
			"description": "Premium wheat variety for high yield",
		},
	},
	EntityArticles: {
		{
			"title":      "Modern Irrigation Techniques for Better Crop Yield",
			"titleHindi": "बेहतर फसल उत्पादन के लिए आधुनिक सिंचाई तकनीक",
			"content": "Learn about drip irrigation, sprinkler systems, and water management techniques " +
				"that can significantly improve your crop yield while conserving water resources.",
		},
		{
			"title":      "Organic Pest Control Methods",
			"titleHindi": "जैविक कीट नियंत्रण विधियां",
			"content": "Discover natural and organic methods to control pests in your crops without " +
				"harmful chemicals. Learn about beneficial insects, neem-based solutions, and " +
				"integrated pest management.",
		},
	},
}

// Seed fills empty product, crop and article collections with demo records.
// Collections that already hold records are left alone.
func (c *Catalog) Seed(ctx context.Context) error {
	for _, name := range []string{EntityProducts, EntityCrops, EntityArticles} {
		col, _ := c.Collection(name)

		empty, err := col.IsEmpty(ctx)
		if err != nil {
			return fmt.Errorf("failed to check %s: %w", name, err)
		}
		if !empty {
			continue
		}

		for _, fields := range seedData[name] {
			if _, crErr := col.Create(ctx, fields); crErr != nil {
				return fmt.Errorf("failed to seed %s: %w", name, crErr)
			}
		}

		c.logger.Info("seeded demo data", zap.String("entity", name), zap.Int("count", len(seedData[name])))
	}

	return nil
}
