package executor

import (
	"context"
	"fmt"
	"strings"

	"github.com/raphaelgruber/isha-go/internal/models"
	"github.com/raphaelgruber/isha-go/internal/timeparse"
)

// --- Reminders ------------------------------------------------------------

func (e *Executor) addReminder(ctx context.Context, values map[string]any) models.ActionResult {
	name := firstString(values, "reminder_name", "title", "name")
	if name == "" {
		return models.Failure(`Please tell me what to remind you about. Example: "remind me to take vitamins at 8am"`)
	}

	clock := timeparse.Clock(firstString(values, "reminder_time", "time"))
	date := timeparse.Date(firstString(values, "date", "time_reference"), e.now())

	row, err := e.store.InsertReminder(ctx, models.Reminder{
		ReminderName: name,
		ReminderTime: clock,
		Day:          timeparse.DayName(date, e.now()),
		Date:         date,
	})
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionAdded,
		Data:    row,
		Message: fmt.Sprintf("Created reminder: %q on %s at %s", name, date, clock),
	}
}

// updateReminder targets the most recent name match. A bare enabled flag
// toggles the reminder without touching its schedule.
func (e *Executor) updateReminder(ctx context.Context, values map[string]any) models.ActionResult {
	id := firstString(values, "id")
	if id == "" {
		search := firstString(values, "reminder_name", "title", "name")
		if search == "" {
			return models.Failure("Please tell me which reminder to update")
		}
		reminder, err := e.store.FindLatestReminderMatch(ctx, search)
		if err != nil {
			return models.Failure(err.Error())
		}
		if reminder == nil {
			return models.Failure(fmt.Sprintf("No reminder found matching %q", search))
		}
		id = reminder.ID
	}

	if enabled, present := boolValue(values, "enabled"); present {
		row, err := e.store.UpdateReminder(ctx, id, map[string]any{"enabled": enabled})
		if err != nil {
			return models.Failure(err.Error())
		}
		status := "disabled"
		if enabled {
			status = "enabled"
		}
		return models.ActionResult{
			Success: true,
			Action:  models.ActionUpdated,
			Data:    row,
			Message: fmt.Sprintf("Reminder %q %s", row.ReminderName, status),
		}
	}

	fields := map[string]any{}
	if newName := firstString(values, "new_name"); newName != "" {
		fields["reminder_name"] = newName
	}
	if clock := firstString(values, "reminder_time", "time"); clock != "" {
		fields["reminder_time"] = timeparse.Clock(clock)
	}
	if dateRef := firstString(values, "date"); dateRef != "" {
		date := timeparse.Date(dateRef, e.now())
		fields["date"] = date
		fields["day"] = timeparse.DayName(date, e.now())
	}
	if len(fields) == 0 {
		return models.Failure("Please specify what to update (name, time, or date)")
	}

	row, err := e.store.UpdateReminder(ctx, id, fields)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionUpdated,
		Data:    row,
		Message: fmt.Sprintf("Updated reminder: %q on %s at %s", row.ReminderName, row.Date, row.ReminderTime),
	}
}

func (e *Executor) deleteReminder(ctx context.Context, values map[string]any) models.ActionResult {
	id := firstString(values, "id")
	name := firstString(values, "reminder_name", "title", "name")
	if id == "" && name == "" {
		return models.Failure("No matching reminder found")
	}

	rows, err := e.store.DeleteReminders(ctx, id, name)
	if err != nil {
		return models.Failure(err.Error())
	}
	if len(rows) == 0 {
		return models.Failure("No matching reminder found")
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionDeleted,
		Data:    rows,
		Message: fmt.Sprintf("Deleted reminder: %q", rows[0].ReminderName),
	}
}

// --- Shopping list --------------------------------------------------------

func (e *Executor) addShoppingItem(ctx context.Context, values map[string]any) models.ActionResult {
	v := unwrap(values, "shopping")
	now := e.now()
	day := now.Weekday().String()
	date := now.Format(timeparse.ISODate)

	// "add milk and eggs" arrives as an items list; each becomes its own row.
	if items := stringList(v, "items"); len(items) > 0 {
		var rows []models.ShoppingItem
		for _, item := range items {
			row, err := e.store.InsertShoppingItem(ctx, models.ShoppingItem{
				GroceryName: item,
				Amount:      "1 unit",
				Day:         day,
				Date:        date,
			})
			if err != nil {
				return models.Failure(err.Error())
			}
			rows = append(rows, *row)
		}
		return models.ActionResult{
			Success: true,
			Action:  models.ActionAdded,
			Data:    rows,
			Message: fmt.Sprintf("Added %d items to shopping list: %s", len(items), strings.Join(items, ", ")),
		}
	}

	item := firstString(v, "item_name", "name", "item", "grocery_name", "shopping_item", "product")
	if item == "" {
		return models.Failure(`Please tell me what item to add. Example: "add milk to shopping list"`)
	}

	amount := firstString(v, "quantity", "amount")
	if amount == "" {
		amount = "1 unit"
	}
	price, _ := firstNumber(v, "price", "price_rupees")

	row, err := e.store.InsertShoppingItem(ctx, models.ShoppingItem{
		GroceryName: item,
		Amount:      amount,
		PriceRupees: price,
		Day:         day,
		Date:        date,
	})
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionAdded,
		Data:    row,
		Message: fmt.Sprintf("Added to shopping list: %s", item),
	}
}

func (e *Executor) updateShoppingItem(ctx context.Context, values map[string]any) models.ActionResult {
	v := unwrap(values, "shopping")
	id := firstString(v, "id")
	search := firstString(v, "old_name", "item_name", "name", "grocery_name")
	if id == "" && search == "" {
		return models.Failure(`Please tell me which item to update. Example: "change milk to almond milk in shopping list"`)
	}

	if id == "" {
		existing, err := e.store.FindLatestShoppingMatch(ctx, search)
		if err != nil {
			return models.Failure(err.Error())
		}
		if existing == nil {
			return models.Failure(fmt.Sprintf("Could not find %q in shopping list", search))
		}
		id = existing.ID
	}

	fields := map[string]any{}
	if newName := firstString(v, "new_name"); newName != "" {
		fields["grocery_name"] = newName
	}
	if amount := firstString(v, "quantity", "amount"); amount != "" {
		fields["amount"] = amount
	}
	if price, ok := firstNumber(v, "price", "price_rupees"); ok {
		fields["price_rupees"] = price
	}
	if len(fields) == 0 {
		return models.Failure("Please specify what to update (name, amount, or price)")
	}

	row, err := e.store.UpdateShoppingItem(ctx, id, fields)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionUpdated,
		Data:    row,
		Message: "Updated shopping list item",
	}
}

func (e *Executor) deleteShoppingItem(ctx context.Context, values map[string]any) models.ActionResult {
	v := unwrap(values, "shopping")
	id := firstString(v, "id")
	name := firstString(v, "item_name", "name", "grocery_name")
	if id == "" && name == "" {
		return models.Failure("No matching item found")
	}

	rows, err := e.store.DeleteShoppingItems(ctx, id, name)
	if err != nil {
		return models.Failure(err.Error())
	}
	if len(rows) == 0 {
		return models.Failure("No matching item found")
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionDeleted,
		Data:    rows,
		Message: "Removed from shopping list",
	}
}

// --- Wishlist -------------------------------------------------------------

func (e *Executor) addWishlistItem(ctx context.Context, values map[string]any) models.ActionResult {
	v := unwrap(values, "wishlist")
	item := firstString(v, "item_name", "name", "item")
	if item == "" {
		return models.Failure(`Please tell me what to add to wishlist. Example: "add running shoes to wishlist"`)
	}

	priority := firstString(v, "priority")
	if priority == "" {
		priority = "medium"
	}

	row, err := e.store.InsertWishlistItem(ctx, models.WishlistItem{
		ItemName:       item,
		Description:    firstString(v, "description"),
		Category:       firstString(v, "category"),
		EstimatedPrice: floatPtr(v, "estimated_price", "price"),
		Priority:       priority,
	})
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionAdded,
		Data:    row,
		Message: fmt.Sprintf("Added to wishlist: %s", item),
	}
}

func (e *Executor) updateWishlistItem(ctx context.Context, values map[string]any) models.ActionResult {
	v := unwrap(values, "wishlist")
	id := firstString(v, "id")
	search := firstString(v, "old_name", "item_name", "name")
	if id == "" && search == "" {
		return models.Failure(`Please tell me which wishlist item to update. Example: "change running shoes price to 5000 in wishlist"`)
	}

	if id == "" {
		existing, err := e.store.FindLatestWishlistMatch(ctx, search)
		if err != nil {
			return models.Failure(err.Error())
		}
		if existing == nil {
			return models.Failure(fmt.Sprintf("Could not find %q in wishlist", search))
		}
		id = existing.ID
	}

	fields := map[string]any{}
	if newName := firstString(v, "new_name"); newName != "" {
		fields["item_name"] = newName
	}
	if price, ok := firstNumber(v, "price", "estimated_price"); ok {
		fields["estimated_price"] = price
	}
	if category := firstString(v, "category"); category != "" {
		fields["category"] = category
	}
	if priority := firstString(v, "priority"); priority != "" {
		fields["priority"] = priority
	}
	if len(fields) == 0 {
		return models.Failure("Please specify what to update (name, price, category, or priority)")
	}

	row, err := e.store.UpdateWishlistItem(ctx, id, fields)
	if err != nil {
		return models.Failure(err.Error())
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionUpdated,
		Data:    row,
		Message: "Updated wishlist item",
	}
}

func (e *Executor) deleteWishlistItem(ctx context.Context, values map[string]any) models.ActionResult {
	v := unwrap(values, "wishlist")
	id := firstString(v, "id")
	name := firstString(v, "item_name", "name")
	if id == "" && name == "" {
		return models.Failure("No matching item found")
	}

	rows, err := e.store.DeleteWishlistItems(ctx, id, name)
	if err != nil {
		return models.Failure(err.Error())
	}
	if len(rows) == 0 {
		return models.Failure("No matching item found")
	}
	return models.ActionResult{
		Success: true,
		Action:  models.ActionDeleted,
		Data:    rows,
		Message: "Removed from wishlist",
	}
}
