package domain

// Planet identifies a body placed in a chart. Lagnam is a pseudo-planet
// marking the ascendant house.
type Planet string

const (
	Sun     Planet = "Su"
	Moon    Planet = "Mo"
	Mars    Planet = "Ma"
	Mercury Planet = "Me"
	Jupiter Planet = "Ju"
	Venus   Planet = "Ve"
	Saturn  Planet = "Sa"
	Rahu    Planet = "Ra"
	Ketu    Planet = "Ke"
	Lagnam  Planet = "La"
)

// Planets lists the nine bodies delivered by an ephemeris source, in chart order.
var Planets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// Gana is a star's temperament category.
type Gana string

const (
	Deva     Gana = "Deva"
	Manushya Gana = "Manushya"
	Rakshasa Gana = "Rakshasa"
)

// Star is one of the 27 nakshatras.
type Star struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	TamilName string `json:"tamil_name"`
	Gana      Gana   `json:"gana"`
	Yoni      string `json:"yoni"`
	Rajju     string `json:"rajju"`
	Vedhai    string `json:"vedhai"` // English name of the incompatible star
}

// Rasi is one of the 12 zodiac signs.
type Rasi struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	TamilName string `json:"tamil_name"`
	Lord      Planet `json:"lord"`
}

const (
	starCount    = 27
	rasiCount    = 12
	padasPerStar = 4
	padasPerRasi = 9
	starSpan     = 360.0 / starCount
	signSpan     = 30.0
	navamsamSpan = signSpan / 9
)

var stars = [starCount]Star{
	{1, "Ashwini", "Aswini", Deva, "Horse", "Foot", "Jyeshta"},
	{2, "Bharani", "Bharani", Manushya, "Elephant", "Thigh", "Anuradha"},
	{3, "Krittika", "Karthigai", Rakshasa, "Sheep", "Stomach", "Vishakha"},
	{4, "Rohini", "Rohini", Manushya, "Serpent", "Neck", "Swati"},
	{5, "Mrigashira", "Mirugasirisham", Deva, "Serpent", "Head", "Dhanishta"},
	{6, "Ardra", "Thiruvathirai", Manushya, "Dog", "Neck", "Shravana"},
	{7, "Punarvasu", "Punarpoosam", Deva, "Cat", "Stomach", "Uttara Ashadha"},
	{8, "Pushya", "Poosam", Deva, "Sheep", "Thigh", "Purva Ashadha"},
	{9, "Ashlesha", "Ayilyam", Rakshasa, "Cat", "Foot", "Mula"},
	{10, "Magha", "Magam", Rakshasa, "Rat", "Foot", "Revati"},
	{11, "Purva Phalguni", "Pooram", Manushya, "Rat", "Thigh", "Uttara Bhadrapada"},
	{12, "Uttara Phalguni", "Uthiram", Manushya, "Cow", "Stomach", "Purva Bhadrapada"},
	{13, "Hasta", "Hastham", Deva, "Buffalo", "Neck", "Shatabhisha"},
	{14, "Chitra", "Chithirai", Rakshasa, "Tiger", "Head", "Mrigashira"},
	{15, "Swati", "Swathi", Deva, "Buffalo", "Neck", "Rohini"},
	{16, "Vishakha", "Visakam", Rakshasa, "Tiger", "Stomach", "Krittika"},
	{17, "Anuradha", "Anusham", Deva, "Deer", "Thigh", "Bharani"},
	{18, "Jyeshta", "Kettai", Rakshasa, "Deer", "Foot", "Ashwini"},
	{19, "Mula", "Moolam", Rakshasa, "Dog", "Foot", "Ashlesha"},
	{20, "Purva Ashadha", "Pooradam", Manushya, "Monkey", "Thigh", "Pushya"},
	{21, "Uttara Ashadha", "Uthiradam", Manushya, "Mongoose", "Stomach", "Punarvasu"},
	{22, "Shravana", "Thiruvonam", Deva, "Monkey", "Neck", "Ardra"},
	{23, "Dhanishta", "Avittam", Rakshasa, "Lion", "Head", "Chitra"},
	{24, "Shatabhisha", "Sathayam", Rakshasa, "Horse", "Neck", "Hasta"},
	{25, "Purva Bhadrapada", "Poorattathi", Manushya, "Lion", "Stomach", "Uttara Phalguni"},
	{26, "Uttara Bhadrapada", "Uthirattathi", Manushya, "Cow", "Thigh", "Purva Phalguni"},
	{27, "Revati", "Revathi", Deva, "Elephant", "Foot", "Magha"},
}

var rasis = [rasiCount]Rasi{
	{1, "Aries", "Mesham", Mars},
	{2, "Taurus", "Rishabam", Venus},
	{3, "Gemini", "Mithunam", Mercury},
	{4, "Cancer", "Kadagam", Moon},
	{5, "Leo", "Simmam", Sun},
	{6, "Virgo", "Kanni", Mercury},
	{7, "Libra", "Thulam", Venus},
	{8, "Scorpio", "Viruchigam", Mars},
	{9, "Sagittarius", "Dhanusu", Jupiter},
	{10, "Capricorn", "Magaram", Saturn},
	{11, "Aquarius", "Kumbam", Saturn},
	{12, "Pisces", "Meenam", Jupiter},
}

// planetFriends is the natural friendship table used by Rasi Athipathi.
var planetFriends = map[Planet][]Planet{
	Sun:     {Moon, Mars, Jupiter},
	Moon:    {Sun, Mercury},
	Mars:    {Sun, Moon, Jupiter},
	Mercury: {Sun, Venus},
	Jupiter: {Sun, Moon, Mars},
	Venus:   {Mercury, Saturn},
	Saturn:  {Mercury, Venus},
}

// yoniEnemies holds each animal's sworn enemy. Lookups go both ways.
var yoniEnemies = map[string]string{
	"Horse":    "Buffalo",
	"Elephant": "Lion",
	"Sheep":    "Monkey",
	"Serpent":  "Mongoose",
	"Dog":      "Deer",
	"Cat":      "Rat",
	"Cow":      "Tiger",
}

// StarByID returns the nakshatra with the given ID (1-27).
func StarByID(id int) (Star, bool) {
	if id < 1 || id > starCount {
		return Star{}, false
	}
	return stars[id-1], true
}

// RasiByID returns the sign with the given ID (1-12).
func RasiByID(id int) (Rasi, bool) {
	if id < 1 || id > rasiCount {
		return Rasi{}, false
	}
	return rasis[id-1], true
}

// Stars returns a copy of the nakshatra table in ID order.
func Stars() []Star {
	out := make([]Star, starCount)
	copy(out, stars[:])
	return out
}

// Rasis returns a copy of the sign table in ID order.
func Rasis() []Rasi {
	out := make([]Rasi, rasiCount)
	copy(out, rasis[:])
	return out
}

// RasiForPada maps a (star, pada) pair to the rasi that pada falls in.
// Each rasi holds exactly nine padas, so stars straddling a sign boundary
// reach two rasis.
func RasiForPada(starID, pada int) (int, bool) {
	if starID < 1 || starID > starCount || pada < 1 || pada > padasPerStar {
		return 0, false
	}
	ordinal := (starID-1)*padasPerStar + (pada - 1)
	return ordinal/padasPerRasi + 1, true
}

// StarRasiSpan is one reachable (star, rasi) combination and the padas that
// produce it.
type StarRasiSpan struct {
	StarID int   `json:"star_id"`
	RasiID int   `json:"rasi_id"`
	Padas  []int `json:"padas"`
}

// starRasiSpans is built once from RasiForPada; ordered by star, then rasi.
var starRasiSpans = buildStarRasiSpans()

func buildStarRasiSpans() []StarRasiSpan {
	spans := make([]StarRasiSpan, 0, starCount+rasiCount)
	for s := 1; s <= starCount; s++ {
		for p := 1; p <= padasPerStar; p++ {
			r, _ := RasiForPada(s, p)
			n := len(spans)
			if n > 0 && spans[n-1].StarID == s && spans[n-1].RasiID == r {
				spans[n-1].Padas = append(spans[n-1].Padas, p)
				continue
			}
			spans = append(spans, StarRasiSpan{StarID: s, RasiID: r, Padas: []int{p}})
		}
	}
	return spans
}

// StarRasiSpans returns every valid (star, rasi) pairing with its padas.
func StarRasiSpans() []StarRasiSpan {
	out := make([]StarRasiSpan, len(starRasiSpans))
	for i, s := range starRasiSpans {
		out[i] = StarRasiSpan{StarID: s.StarID, RasiID: s.RasiID, Padas: append([]int(nil), s.Padas...)}
	}
	return out
}

// StarRasiValid reports whether the star can occur in the given rasi.
func StarRasiValid(starID, rasiID int) bool {
	for _, s := range starRasiSpans {
		if s.StarID == starID && s.RasiID == rasiID {
			return true
		}
	}
	return false
}

func isFriend(a, b Planet) bool {
	for _, f := range planetFriends[a] {
		if f == b {
			return true
		}
	}
	return false
}

func yoniEnemy(a, b string) bool {
	return yoniEnemies[a] == b || yoniEnemies[b] == a
}
