package app

import (
	"fmt"

	"seed-segmenter/internal/domain/entity"
)

// Веса подсветки. Сумма ca + cb*(1-ca) не равна 1, поэтому неразмеченные
// пиксели тоже слегка темнеют.
const (
	overlayWeight float64 = 0.3 // ca
	imageWeight   float64 = 0.9 // cb
)

// Blend накладывает маску маркеров на изображение:
// result = mask*ca + img*cb*(1-ca), с отбрасыванием дробной части.
// Входные данные не изменяются.
func Blend(img, mask *entity.Image) (*entity.Image, error) {
	if img == nil || !img.SameShape(mask) {
		return nil, fmt.Errorf("blend: %w", entity.ErrShapeMismatch)
	}

	const ca, cb = overlayWeight, imageWeight
	out := entity.NewImage(img.Width, img.Height)
	for i, v := range img.Pix {
		out.Pix[i] = uint8(float64(mask.Pix[i])*ca + float64(v)*cb*(1-ca))
	}
	return out, nil
}
