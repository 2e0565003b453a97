package stacks

import "stack-manager/core/photos"

func capture(id, fileName, localDateTime string) photos.Asset {
	return photos.Asset{ID: id, OriginalFileName: &fileName, LocalDateTime: localDateTime}
}

func sized(id string, width, height int) photos.Asset {
	return photos.Asset{
		ID:           id,
		OriginalPath: "/library/" + id + ".jpg",
		ExifInfo:     &photos.ExifInfo{ExifImageWidth: &width, ExifImageHeight: &height},
	}
}

func stack(id, primary string, members ...photos.Asset) photos.Stack {
	return photos.Stack{ID: id, PrimaryAssetID: primary, Assets: members}
}

func ids(members ...string) []photos.Asset {
	assets := make([]photos.Asset, len(members))
	for i, id := range members {
		assets[i] = photos.Asset{ID: id}
	}
	return assets
}

func mustCatalog(stacks ...photos.Stack) *Catalog {
	c, err := NewCatalog(stacks)
	if err != nil {
		panic(err)
	}
	return c
}

func strPtr(v string) *string { return &v }
