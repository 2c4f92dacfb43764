package view

import "github.com/erazemk/konzola/internal/model"

// DialogKind tags the dialog variant currently hosted by the list view.
type DialogKind int

const (
	DialogNone DialogKind = iota
	DialogAddItem
	DialogEditItem
	DialogBulkAction
)

// Dialog is a tagged variant over the list view's dialogs: at most one is
// open at a time and a single host renders whichever it is.
type Dialog struct {
	Kind DialogKind
	Form *ItemForm   // AddItem and EditItem
	Bulk *BulkDialog // BulkAction
}

// NoDialog is the closed state.
func NoDialog() Dialog { return Dialog{Kind: DialogNone} }

// AddItemDialog opens the add-product form.
func AddItemDialog() Dialog {
	return Dialog{Kind: DialogAddItem, Form: NewItemForm()}
}

// EditItemDialog opens the edit form prefilled from item.
func EditItemDialog(item model.Item) Dialog {
	return Dialog{Kind: DialogEditItem, Form: NewEditForm(item)}
}

// BulkActionDialog opens the bulk action dialog for the given action.
func BulkActionDialog(kind BulkKind) Dialog {
	return Dialog{Kind: DialogBulkAction, Bulk: NewBulkDialog(kind)}
}
