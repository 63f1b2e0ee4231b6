package entity

import (
	"image"
	"sort"
)

// Labels — результат сегментации: метка области для каждого пикселя.
type Labels struct {
	Width  int
	Height int
	Values []int32
}

// NewLabels создаёт массив меток, заполненный нулями.
func NewLabels(width, height int) *Labels {
	return &Labels{
		Width:  width,
		Height: height,
		Values: make([]int32, width*height),
	}
}

// At возвращает метку пикселя.
func (l *Labels) At(x, y int) int32 {
	return l.Values[y*l.Width+x]
}

// Visualize умножает метки на 255 и приводит к uint8 с переполнением:
// объект становится 255, фон 1, граница 0.
func (l *Labels) Visualize() *image.Gray {
	gray := image.NewGray(image.Rect(0, 0, l.Width, l.Height))
	for i, v := range l.Values {
		gray.Pix[i] = uint8(v * 255)
	}
	return gray
}

// Distinct возвращает отсортированный список встречающихся меток.
func (l *Labels) Distinct() []int32 {
	seen := make(map[int32]struct{})
	for _, v := range l.Values {
		seen[v] = struct{}{}
	}

	out := make([]int32, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
