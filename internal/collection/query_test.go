package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vigyat/agrostore/internal/collection"
)

func TestFilter(t *testing.T) {
	records := []collection.Record{
		{"id": "1", "name": "NPK Fertilizer 19:19:19", "type": "fertilizer", "price": float64(850), "inStock": true},
		{"id": "2", "name": "Chlorpyrifos 20% EC", "type": "pesticide", "price": float64(320), "inStock": false},
		{"id": "3", "name": "Urea", "type": "Fertilizer", "description": "Nitrogen rich", "price": float64(266), "inStock": true},
	}

	schema := collection.Schema{
		Fields: []collection.Field{
			{Name: "name", Kind: collection.KindString},
			{Name: "type", Kind: collection.KindString},
			{Name: "price", Kind: collection.KindNumber},
			{Name: "inStock", Kind: collection.KindBool},
		},
	}

	ids := func(rs []collection.Record) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.ID()
		}
		return out
	}

	cases := []struct {
		name   string
		params map[string]string
		want   []string
	}{
		{"no filter", map[string]string{}, []string{"1", "2", "3"}},
		{"search name", map[string]string{"q": "npk"}, []string{"1"}},
		{"search description", map[string]string{"q": "NITROGEN"}, []string{"3"}},
		{"search digits", map[string]string{"q": "20%"}, []string{"2"}},
		{"match type", map[string]string{"type": "fertilizer"}, []string{"1", "3"}},
		{"match bool", map[string]string{"inStock": "false"}, []string{"2"}},
		{"match number", map[string]string{"price": "266"}, []string{"3"}},
		{"combined", map[string]string{"type": "fertilizer", "q": "urea"}, []string{"3"}},
		{"undeclared param ignored", map[string]string{"page": "2"}, []string{"1", "2", "3"}},
		{"no match", map[string]string{"q": "tractor"}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := collection.Filter(records, schema.QueryFromParams(tc.params))
			assert.Equal(t, tc.want, ids(got))
		})
	}
}
