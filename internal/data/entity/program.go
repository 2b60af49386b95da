package entity

// Program rows are owned by the program catalog feature; this service only
// reads them for enrollment existence checks and joins.
type Program struct {
	Base
	Title         string   `db:"title"`
	Description   *string  `db:"description"`
	ImageFilename *string  `db:"image_filename"`
	Price         *float64 `db:"price"`
	Schedule      *string  `db:"schedule"`
}
