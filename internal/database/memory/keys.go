package memory

// Version keys. Index keys let a transaction that observed an absence, or a
// per-player listing, conflict with a later insert into the same slot.

func playerKey(id string) string { return "player:" + id }

func usernameKey(name string) string { return "username:" + name }

func inventoryKey(id string) string { return "inventory:" + id }

func inventoryOwnerKey(playerID, itemID string) string {
	return "inventory-owner:" + playerID + "|" + itemID
}

func taskKey(id string) string { return "task:" + id }

func taskOwnerKey(playerID, templateID string) string {
	return "task-owner:" + playerID + "|" + templateID
}

func tasksOfKey(playerID string) string { return "tasks-of:" + playerID }

func feedKey(id string) string { return "feed:" + id }
