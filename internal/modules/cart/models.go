package cart

import "encoding/json"

// Item is one purchasable line read from the saved cart. It is input data
// owned by the menu page; this service never writes it back.
type Item struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Cart is the ordered item sequence as the menu page stored it.
type Cart []Item

// decode parses a stored cart payload. The payload comes from a page script
// we don't control, so an entry with wrong-typed fields degrades to the zero
// item (quantity 0, skipped downstream) instead of failing the whole cart.
// A payload that isn't a JSON array fails outright.
func decode(raw []byte) (Cart, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	items := make(Cart, 0, len(entries))
	for _, e := range entries {
		var it Item
		if err := json.Unmarshal(e, &it); err != nil {
			items = append(items, Item{})
			continue
		}
		items = append(items, it)
	}
	return items, nil
}
