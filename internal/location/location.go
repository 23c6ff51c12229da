// Package location serves the immutable district/upazila reference data
// bundled with the binary. An upazila belongs to exactly one district.
package location

import (
	_ "embed"
	"encoding/json"
	"log"
	"strings"
)

//go:embed data/districts.json
var districtsRaw []byte

//go:embed data/upazilas.json
var upazilasRaw []byte

type District struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Upazila struct {
	ID         int    `json:"id"`
	DistrictID int    `json:"district_id"`
	Name       string `json:"name"`
}

type districtFile struct {
	Version   int        `json:"version"`
	Districts []District `json:"districts"`
}

type upazilaFile struct {
	Version  int       `json:"version"`
	Upazilas []Upazila `json:"upazilas"`
}

var (
	districts        []District
	upazilas         []Upazila
	districtsByName  map[string]District
	upazilasByDistID map[int][]Upazila
)

func init() {
	var df districtFile
	if err := json.Unmarshal(districtsRaw, &df); err != nil {
		log.Fatalf("failed to parse bundled districts: %v", err)
	}
	var uf upazilaFile
	if err := json.Unmarshal(upazilasRaw, &uf); err != nil {
		log.Fatalf("failed to parse bundled upazilas: %v", err)
	}

	districts = df.Districts
	upazilas = uf.Upazilas

	districtsByName = make(map[string]District, len(districts))
	for _, d := range districts {
		districtsByName[strings.ToLower(d.Name)] = d
	}

	upazilasByDistID = make(map[int][]Upazila, len(districts))
	for _, u := range upazilas {
		upazilasByDistID[u.DistrictID] = append(upazilasByDistID[u.DistrictID], u)
	}
}

// Districts returns all districts in dataset order.
func Districts() []District {
	return districts
}

// DistrictByName looks up a district case-insensitively.
func DistrictByName(name string) (District, bool) {
	d, ok := districtsByName[strings.ToLower(strings.TrimSpace(name))]
	return d, ok
}

// UpazilasOf returns the upazilas whose district foreign key matches
// districtID. The result is never mutated by callers.
func UpazilasOf(districtID int) []Upazila {
	return upazilasByDistID[districtID]
}

// Belongs reports whether upazilaName is an upazila of districtName.
// Both lookups are case-insensitive.
func Belongs(districtName, upazilaName string) bool {
	d, ok := DistrictByName(districtName)
	if !ok {
		return false
	}
	want := strings.ToLower(strings.TrimSpace(upazilaName))
	for _, u := range upazilasByDistID[d.ID] {
		if strings.ToLower(u.Name) == want {
			return true
		}
	}
	return false
}
