package stacks

import "stack-manager/core/photos"

// GroupKey is the identity of a physical capture: the exact file name and
// local capture time strings. No normalisation is applied, so timestamps that
// differ only in formatting do not match.
type GroupKey struct {
	FileName  string `json:"file_name"`
	Timestamp string `json:"timestamp"`
}

// DuplicateGroup is a set of assets sharing a GroupKey.
type DuplicateGroup struct {
	Key      GroupKey `json:"key"`
	AssetIDs []string `json:"asset_ids"`
}

// GroupDuplicates partitions assets by GroupKey and returns the groups with
// two or more members, ordered by the first appearance of their key.
// Assets without a file name or a local capture time are skipped.
func GroupDuplicates(assets []photos.Asset) []DuplicateGroup {
	index := make(map[GroupKey]int)
	var groups []DuplicateGroup

	for _, asset := range assets {
		key := GroupKey{FileName: asset.FileName(), Timestamp: asset.LocalDateTime}
		if key.FileName == "" || key.Timestamp == "" {
			continue
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, DuplicateGroup{Key: key})
		}
		groups[i].AssetIDs = append(groups[i].AssetIDs, asset.ID)
	}

	duplicates := groups[:0]
	for _, g := range groups {
		if len(g.AssetIDs) > 1 {
			duplicates = append(duplicates, g)
		}
	}
	return duplicates
}
