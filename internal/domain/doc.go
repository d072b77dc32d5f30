// Package domain computes Tamil birth charts and Thirumana Porutham (marriage
// compatibility) between two birth profiles.
//
// # Pipeline
//
//	birth details -> place resolution -> planetary longitudes (ephemeris)
//	  -> Vakiya correction -> Lagnam -> Rasi / Navamsam charts -> star & rasi IDs
//
// Everything after the ephemeris call is a pure function of its inputs and the
// read-only reference tables in reference.go.
//
// # Vakiya Conventions
//
// Longitudes are corrected with a fixed ayanamsa and a fixed Vakiya offset:
//
//	vakiya = normalize(longitude - 24.0 + 1.3333)
//
// The 1.3333 degree offset is the traditional 1°20' gap between the Vakiya
// panchangam and the Lahiri ayanamsa. Sources that deliver the Moon in the
// legacy radian representation are repaired first by [FixMoonRadians].
//
// The Navamsam chart is cast from the uncorrected (base) longitudes; only the
// Lagnam marker uses its Vakiya longitude there.
//
// # Lagnam
//
// The ascendant is found by walking rasimana durations forward from a fixed
// 05:50 sunrise. Sunrise and rasimanas are constants tuned for south Indian
// latitudes, not computed per date or place:
//
//	Mesham 1.78h | Rishabam 1.93h | Mithunam 2.08h | Kadagam 2.13h
//	Simmam 2.07h | Kanni 2.01h    | Thulam 2.01h   | Viruchigam 2.07h
//	Dhanusu 2.13h | Magaram 2.08h | Kumbam 1.93h   | Meenam 1.78h
//
// # Scoring
//
// Twelve poruthams are scored bride -> groom. Rajju is an absolute veto;
// a one-sided Chevvai Dosham is the second veto. See [Evaluate].
package domain
