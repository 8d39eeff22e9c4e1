package dto

import (
	"hostel/internal/domains/messmenu/model"
	"hostel/shared/constant"
	gModel "hostel/shared/model"
	"time"

	"github.com/google/uuid"
)

type UpsertMenuRequest struct {
	Date      string `json:"date"      validate:"required,datetime=2006-01-02"`
	Breakfast string `json:"breakfast" validate:"max=500"`
	Lunch     string `json:"lunch"     validate:"max=500"`
	Dinner    string `json:"dinner"    validate:"max=500"`
}

func (r *UpsertMenuRequest) ToModel(date time.Time, user string, now time.Time) model.MessMenu {
	return model.MessMenu{
		ID:        uuid.NewString(),
		Date:      date,
		Breakfast: r.Breakfast,
		Lunch:     r.Lunch,
		Dinner:    r.Dinner,
		Metadata:  gModel.NewMetadata(user, now),
	}
}

type MenuResponse struct {
	Date      string `json:"date"`
	Weekday   string `json:"weekday"`
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

func (r *MenuResponse) FromModel(model model.MessMenu) {
	r.Date = model.Date.Format(constant.DayDateFormat)
	r.Weekday = model.Date.Weekday().String()
	r.Breakfast = model.Breakfast
	r.Lunch = model.Lunch
	r.Dinner = model.Dinner
}

type WeekMenuResponse struct {
	Days []MenuResponse `json:"days"`
}

// FromModels lays menus over days. A day without a stored menu keeps empty meals.
func (r *WeekMenuResponse) FromModels(days []time.Time, menus []model.MessMenu) {
	byDate := make(map[string]model.MessMenu, len(menus))
	for _, menu := range menus {
		byDate[menu.Date.Format(constant.DayDateFormat)] = menu
	}

	r.Days = make([]MenuResponse, len(days))

	for i, day := range days {
		menu, ok := byDate[day.Format(constant.DayDateFormat)]
		if !ok {
			menu = model.MessMenu{}
		}

		menu.Date = day
		r.Days[i].FromModel(menu)
	}
}
