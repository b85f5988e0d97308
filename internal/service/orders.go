package service

import (
	"regexp"
	"strings"
)

// orderMarker starts every order in the paste format the sales team uses.
var orderMarker = regexp.MustCompile(`✅Name\s+:`)

// SplitOrders splits pasted text into individual orders on the order marker.
// Pieces are trimmed and empty pieces are dropped.
func SplitOrders(orderDetails string) []string {
	pieces := orderMarker.Split(orderDetails, -1)

	orders := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			orders = append(orders, piece)
		}
	}
	return orders
}
