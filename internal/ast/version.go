package ast

import "fmt"

// EsVersion is an ECMAScript edition the engine must keep output compatible with.
type EsVersion int

const (
	Es3 EsVersion = iota
	Es5
	Es2015
	Es2016
	Es2017
	Es2018
	Es2019
	Es2020
)

var esVersionNames = [...]string{
	Es3:    "es3",
	Es5:    "es5",
	Es2015: "es2015",
	Es2016: "es2016",
	Es2017: "es2017",
	Es2018: "es2018",
	Es2019: "es2019",
	Es2020: "es2020",
}

// String returns the lowercase edition name, e.g. "es2015".
func (v EsVersion) String() string {
	if v < 0 || int(v) >= len(esVersionNames) {
		return fmt.Sprintf("EsVersion(%d)", int(v))
	}
	return esVersionNames[v]
}

// EsVersions lists every known edition in ascending order.
func EsVersions() []EsVersion {
	return []EsVersion{Es3, Es5, Es2015, Es2016, Es2017, Es2018, Es2019, Es2020}
}
