// component/health.go
package component

// Health — компонент здоровья. Дробные значения нужны для непрерывного
// урона (яд, горение, лазер).
type Health struct {
	Current float64
	Max     float64
}

// Shield — щит врага: поглощает урон до здоровья и восстанавливается
// со временем до ёмкости.
type Shield struct {
	Current float64
	Max     float64
	Regen   float64 // единиц в секунду
}
