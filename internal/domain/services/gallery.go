package services

// RemovalRequest captures which photo the user asked to remove before the
// confirmation step runs. It carries intent only and mutates nothing.
type RemovalRequest struct {
	URL    string `json:"url" binding:"required"`
	IsMain bool   `json:"is_main"`
}

// PlaceUploads decides where a batch of freshly stored references lands.
// Placement is computed once over the whole batch: the first reference
// becomes the main image only when none existed before the batch, every
// other reference appends to the gallery in input order. Inputs are not
// mutated.
func PlaceUploads(main *string, gallery []string, stored []string) (*string, []string) {
	updated := make([]string, len(gallery), len(gallery)+len(stored))
	copy(updated, gallery)

	for i, url := range stored {
		if main == nil && i == 0 {
			u := url
			main = &u
			continue
		}
		updated = append(updated, url)
	}
	return main, updated
}

// RemoveImage detaches one reference from the record. Removing the main
// image promotes the first gallery entry (if any) into its place; removing
// a gallery image drops every matching occurrence and preserves the order
// of the rest. The underlying blob is never touched.
func RemoveImage(main *string, gallery []string, req RemovalRequest) (*string, []string) {
	if req.IsMain {
		if len(gallery) > 0 {
			promoted := gallery[0]
			rest := append([]string(nil), gallery[1:]...)
			return &promoted, rest
		}
		return nil, []string{}
	}

	kept := make([]string, 0, len(gallery))
	for _, url := range gallery {
		if url != req.URL {
			kept = append(kept, url)
		}
	}
	return main, kept
}
