package entity

// MarkerClass класс затравочной точки
type MarkerClass int8

const (
	Unset      MarkerClass = 0  // Пиксель не размечен
	Foreground MarkerClass = 1  // Объект
	Background MarkerClass = -1 // Фон
)

var (
	foregroundColor = [Channels]uint8{0, 0, 255} // синий
	backgroundColor = [Channels]uint8{255, 0, 0} // красный
)

// Valid сообщает, можно ли поставить маркер этого класса.
func (c MarkerClass) Valid() bool {
	return c == Foreground || c == Background
}

// Color возвращает цвет подсветки класса на оверлее.
func (c MarkerClass) Color() [Channels]uint8 {
	switch c {
	case Foreground:
		return foregroundColor
	case Background:
		return backgroundColor
	default:
		return [Channels]uint8{}
	}
}

func (c MarkerClass) String() string {
	switch c {
	case Foreground:
		return "foreground"
	case Background:
		return "background"
	default:
		return "unset"
	}
}

// MarkerMap — карта маркеров H×W со значениями из {-1, 0, +1}.
type MarkerMap struct {
	Width  int
	Height int
	Values []MarkerClass
	count  int
}

// NewMarkerMap создаёт пустую карту маркеров.
func NewMarkerMap(width, height int) *MarkerMap {
	return &MarkerMap{
		Width:  width,
		Height: height,
		Values: make([]MarkerClass, width*height),
	}
}

// At возвращает класс пикселя.
func (m *MarkerMap) At(x, y int) MarkerClass {
	return m.Values[y*m.Width+x]
}

// Set записывает класс пикселя. Последняя запись побеждает.
func (m *MarkerMap) Set(x, y int, c MarkerClass) {
	i := y*m.Width + x
	prev := m.Values[i]
	m.Values[i] = c

	switch {
	case prev == Unset && c != Unset:
		m.count++
	case prev != Unset && c == Unset:
		m.count--
	}
}

// Count возвращает число размеченных пикселей.
func (m *MarkerMap) Count() int {
	return m.count
}

// Empty сообщает, что ни одного маркера нет.
func (m *MarkerMap) Empty() bool {
	return m.count == 0
}
