package entities

import "fmt"

// fakeSizer 按资源ID返回固定尺寸的 ImageSizer
type fakeSizer map[string][2]int

func (f fakeSizer) ImageSizeByID(resourceID string) (int, int, error) {
	size, ok := f[resourceID]
	if !ok {
		return 0, 0, fmt.Errorf("no image %s", resourceID)
	}
	return size[0], size[1], nil
}

// defaultSizes 与内置资源图片一致的尺寸
func defaultSizes() fakeSizer {
	return fakeSizer{
		"IMAGE_RAINDROP":       {24, 32},
		"IMAGE_RAINDROP_LARGE": {40, 56},
		"IMAGE_SUGARDROP":      {28, 28},
		"IMAGE_JELLYBEAN":      {32, 24},
	}
}
