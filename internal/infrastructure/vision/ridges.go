package vision

import "seed-segmenter/internal/domain/entity"

// fillRidges раздаёт непомеченным пикселям (линиям водораздела) метку
// ближайшей области: обход в ширину сразу от всех помеченных пикселей.
// Если меток нет совсем, массив не меняется.
func fillRidges(labels *entity.Labels) {
	w, h := labels.Width, labels.Height
	queue := make([]int, 0, len(labels.Values))
	for i, v := range labels.Values {
		if v != 0 {
			queue = append(queue, i)
		}
	}

	for head := 0; head < len(queue); head++ {
		i := queue[head]
		x, y := i%w, i/w
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || ny < 0 || nx >= w || ny >= h {
				continue
			}
			n := ny*w + nx
			if labels.Values[n] == 0 {
				labels.Values[n] = labels.Values[i]
				queue = append(queue, n)
			}
		}
	}
}
