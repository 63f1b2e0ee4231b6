package entity

import "errors"

var (
	// ErrNoImage — операция требует загруженного изображения.
	ErrNoImage = errors.New("no image loaded")
	// ErrNoMarkers — сегментация запрошена до первого маркера.
	ErrNoMarkers = errors.New("place at least one marker before segmenting")
	// ErrOutOfBounds — координаты маркера вне изображения.
	ErrOutOfBounds = errors.New("marker position is outside the image")
	// ErrInvalidClass — маркер можно поставить только классом Foreground или Background.
	ErrInvalidClass = errors.New("invalid marker class")
	// ErrShapeMismatch — размеры массивов не совпадают.
	ErrShapeMismatch = errors.New("array shapes do not match")
)
