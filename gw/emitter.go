package gw

import (
	"fmt"
	"io"

	"github.com/lesfleursdelanuitdev/consang-go/pedigree"
)

// Emit prints store in canonical form: every family in ascending index
// order, parent and child keys pinned with their adapter index so a
// subsequent Load round-trips to the same indices, relation and sex
// tokens canonicalized. Founders with no union family are printed as
// bare key lines after the family blocks.
func Emit(store *pedigree.Store, w io.Writer) error {
	inAnyFamily := make(map[uint32]bool)

	for _, famIdx := range store.FamilyIndices() {
		family := store.Families[famIdx]
		p1 := keyToken(store, family.Parent1)
		p2 := keyToken(store, family.Parent2)
		inAnyFamily[family.Parent1] = true
		inAnyFamily[family.Parent2] = true

		if _, err := fmt.Fprintf(w, "fam %s + %s %s\n", p1, p2, relationText(family.Relation)); err != nil {
			return err
		}
		// Load only commits a family at its "end" line, so even a childless
		// family gets an (empty) beg/end block.
		if _, err := fmt.Fprintln(w, "beg"); err != nil {
			return err
		}
		for _, childIdx := range family.Children {
			inAnyFamily[childIdx] = true
			child := store.Persons[childIdx]
			sex := ""
			if child != nil {
				sex = sexText(child.Sex)
			}
			line := fmt.Sprintf("- %s", keyToken(store, childIdx))
			if sex != "" {
				line += " " + sex
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "end"); err != nil {
			return err
		}
	}

	for _, idx := range store.PersonIndices() {
		if inAnyFamily[idx] {
			continue
		}
		if _, err := fmt.Fprintln(w, keyToken(store, idx)); err != nil {
			return err
		}
	}

	return nil
}

func keyToken(store *pedigree.Store, idx uint32) string {
	if idx == 0 {
		return "-"
	}
	return formatKeyIndex(store.KeyForIndex(idx), idx)
}
