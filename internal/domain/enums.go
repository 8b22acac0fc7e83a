package domain

import (
	"fmt"
	"strings"
)

// Visibility - три состояния тумана войны.
// Хранится не отдельным полем, а выводится из пары Revealed/Peeked.
type Visibility uint8

const (
	Hidden Visibility = iota
	Peeked
	Revealed
)

func (v Visibility) String() string {
	switch v {
	case Peeked:
		return "PEEKED"
	case Revealed:
		return "REVEALED"
	default:
		return "HIDDEN"
	}
}

// BuffType - бонус, который дает спасенный пассажир
type BuffType uint8

const (
	BuffUnknown BuffType = iota
	BuffStamina
	BuffHealth
	BuffAttack
)

var buffStringToType = map[string]BuffType{
	"STAMINA": BuffStamina,
	"HEALTH":  BuffHealth,
	"ATTACK":  BuffAttack,
}

var buffTypeToString = map[BuffType]string{
	BuffStamina: "STAMINA",
	BuffHealth:  "HEALTH",
	BuffAttack:  "ATTACK",
}

// AllBuffs - порядок важен: генератор выбирает бафф по индексу в этом срезе
func AllBuffs() []BuffType {
	return []BuffType{BuffStamina, BuffHealth, BuffAttack}
}

func ParseBuff(s string) BuffType {
	if val, ok := buffStringToType[strings.ToUpper(s)]; ok {
		return val
	}
	return BuffUnknown
}

func (b BuffType) String() string {
	if val, ok := buffTypeToString[b]; ok {
		return val
	}
	return "UNKNOWN"
}

// Weather - погода сектора. Ветер повышает базовую стоимость действий.
type Weather uint8

const (
	WeatherSunny Weather = iota
	WeatherRain
	WeatherWindy
)

var weatherToString = map[Weather]string{
	WeatherSunny: "SUNNY",
	WeatherRain:  "RAIN",
	WeatherWindy: "WINDY",
}

func AllWeather() []Weather {
	return []Weather{WeatherSunny, WeatherRain, WeatherWindy}
}

func ParseWeather(s string) (Weather, error) {
	upper := strings.ToUpper(s)
	for w, name := range weatherToString {
		if name == upper {
			return w, nil
		}
	}
	return WeatherSunny, fmt.Errorf("unknown weather %q", s)
}

func (w Weather) String() string {
	if val, ok := weatherToString[w]; ok {
		return val
	}
	return "UNKNOWN"
}

// ViewState - какой экран сейчас активен у оркестратора
type ViewState uint8

const (
	ViewMap ViewState = iota
	ViewShop
	ViewGameOver
)

func (v ViewState) String() string {
	switch v {
	case ViewMap:
		return "MAP"
	case ViewShop:
		return "SHOP"
	case ViewGameOver:
		return "GAMEOVER"
	default:
		return "UNKNOWN"
	}
}
