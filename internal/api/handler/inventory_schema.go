package handler

// addClassificationForm is the POST /inv/add-classification payload.
type addClassificationForm struct {
	Name string `form:"name" validate:"required,min=2,max=50,alphanum"`
}

// addVehicleForm is the POST /inv/add-vehicle payload.
type addVehicleForm struct {
	ClassificationID string  `form:"classification_id" validate:"required"`
	Make             string  `form:"make" validate:"required,min=2,max=50"`
	Model            string  `form:"model" validate:"required,min=1,max=50"`
	Year             int     `form:"year" validate:"required,gte=1900,lte=2100"`
	Description      string  `form:"description" validate:"max=2000"`
	Image            string  `form:"image" validate:"max=255"`
	Thumbnail        string  `form:"thumbnail" validate:"max=255"`
	Price            float64 `form:"price" validate:"required,gt=0"`
	Miles            int     `form:"miles" validate:"gte=0"`
	Color            string  `form:"color" validate:"required,min=2,max=30"`
}

// reviewForm is the POST /inv/detail/:invID/reviews payload.
type reviewForm struct {
	Rating  int    `form:"rating" validate:"required,gte=1,lte=5"`
	Comment string `form:"comment" validate:"required,min=3,max=1000"`
}
