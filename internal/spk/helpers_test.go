package spk_test

import (
	"strings"

	"github.com/mind-engage/mindengage-spk/internal/spk"
)

// table builds a Table from "|"-separated lines; the first line is the header.
func table(lines ...string) spk.Table {
	t := spk.Table{Header: strings.Split(lines[0], "|")}
	for _, l := range lines[1:] {
		t.Rows = append(t.Rows, strings.Split(l, "|"))
	}
	return t
}

func fiveStudents() spk.Table {
	return table(
		"NIM|Nama|Modul1|Modul2|Modul3|UTP|UAP|Keaktifan",
		"001|Ani|80|85|90|75|80|90",
		"002|Budi|60|65|70|60|55|70",
		"003|Citra|90|95|100|88|92|95",
		"004|Dedi|40|45|50|35|40|50",
		"005|Eka|70|75|80|70|72|80",
	)
}

var ones = spk.Weights{Modul: 1, UTP: 1, UAP: 1, Keaktifan: 1}
