package mysql

// The three tables deliberately mimic spreadsheet sheets: an insertion-order
// row id and plain text columns, with no unique keys on the logical keys.
// Upserts scan in Go and overwrite by row id, so duplicate logical keys are
// possible and the first row wins on read.

const selectGuestRowsSQL = `
SELECT row_id, guest_id, room_number, guest_name, loyalty_status, preferences, language, check_in, check_out
FROM guest_profiles
ORDER BY row_id`

const insertGuestRowSQL = `
INSERT INTO guest_profiles
  (guest_id, room_number, guest_name, loyalty_status, preferences, language, check_in, check_out)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

const updateGuestRowSQL = `
UPDATE guest_profiles
SET guest_id = ?, room_number = ?, guest_name = ?, loyalty_status = ?, preferences = ?, language = ?, check_in = ?, check_out = ?
WHERE row_id = ?`

const selectChatRowsSQL = `
SELECT ts, guest_id, room_number, role, body, language, intent
FROM chat_history
ORDER BY row_id`

const insertChatRowSQL = `
INSERT INTO chat_history
  (ts, guest_id, room_number, role, body, language, intent)
VALUES (?, ?, ?, ?, ?, ?, ?)`

const selectSettingRowsSQL = `
SELECT row_id, setting_key, setting_value
FROM settings
ORDER BY row_id`

const insertSettingRowSQL = `
INSERT INTO settings (setting_key, setting_value) VALUES (?, ?)`

const updateSettingRowSQL = `
UPDATE settings SET setting_value = ? WHERE row_id = ?`
