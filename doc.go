// Package otable shows slices of arbitrary objects as tables without
// copying them.
//
// A Column projects one attribute (a struct field or map entry), or a
// value derived by a function, across a slice. A Table puts several
// equally long columns side by side and hands out Rows, which address
// cells by column position or name. Reads and writes go straight to the
// objects, so editing a cell edits the object, and every view holding
// that object sees the change:
//
//	animals := []Animal{{"Ralf", 4}, {"Simon", 0}, {"Tripod", 3}}
//	t := otable.MustTable(
//		otable.MustColumn("name", animals),
//		otable.MustColumn("legs", animals),
//	)
//	row, _ := t.Row(1)
//	_ = row.SetCellByName("legs", 2) // animals[1].Legs is now 2
//	fmt.Print(t)
//
// Tables are not safe for concurrent use.
package otable
