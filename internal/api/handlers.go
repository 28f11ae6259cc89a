package api

import (
	"Carrytome/internal/constants"
	"Carrytome/internal/db"
	"Carrytome/internal/formatters"
	"Carrytome/internal/models"
	"Carrytome/internal/telegram_api"
	"Carrytome/internal/views"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"
	"github.com/xuri/excelize/v2"
)

// jsonResponse - вспомогательная структура для стандартного ответа API
type jsonResponse struct {
	Status  string      `json:"status"` // "success" или "error"
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// uploadResponse - контракт ответа релея загрузок. Форма {ok, result/error}
// сохранена от исходного прокси, клиент мини-аппа разбирает именно ее.
type uploadResponse struct {
	OK     bool        `json:"ok"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// RouteStateResponse - маршрут вместе с кэшем формы груза.
type RouteStateResponse struct {
	Route models.RouteQuery `json:"route"`
	Found bool              `json:"found"`
}

// CargoFormState - кэшированные поля формы регистрации груза.
type CargoFormState struct {
	Categories []string `json:"categories"`
	Weight     string   `json:"weight"`
	Value      string   `json:"value"`
}

// KycStateRequest - запрос на изменение флага KYC.
type KycStateRequest struct {
	Registered bool `json:"registered"`
}

// --- Вспомогательные функции для JSON-ответов ---
func writeJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(jsonResponse{Status: "error", Message: message})
}

func writeJSONSuccess(w http.ResponseWriter, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(jsonResponse{Status: "success", Message: message, Data: data})
}

func writeUploadError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(uploadResponse{OK: false, Error: message})
}

func writeUploadOK(w http.ResponseWriter, result interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(uploadResponse{OK: true, Result: result})
}

// applyViewParams переносит query-параметры filter/sort/search в состояние
// представления. Отсутствующий параметр состояние не трогает.
func applyViewParams(v *views.View, r *http.Request) {
	q := r.URL.Query()
	if q.Has("filter") {
		v.SetFilter(q.Get("filter"))
	}
	if q.Has("sort") {
		v.SetSort(q.Get("sort"))
	}
	if q.Has("search") {
		v.SetSearch(q.Get("search"))
	}
}

// GetClientConfig отдает публичную конфигурацию для клиента мини-аппа.
func GetClientConfig(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, "Client config", map[string]interface{}{
		"botUsername":   apiDeps.Config.BotUsername,
		"maxUploadSize": constants.MAX_UPLOAD_SIZE,
		"env":           apiDeps.Config.AppEnv,
	})
}

// UploadTelegramHandler - релей загрузок мини-аппа в Telegram.
// Маршрут публичный: initData приходит полем формы и проверяется здесь же,
// потому что WebApp шлет форму без заголовка X-Telegram-Auth.
func UploadTelegramHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, constants.MAX_UPLOAD_SIZE+(1<<20))

	if err := r.ParseMultipartForm(constants.MAX_UPLOAD_SIZE); err != nil {
		writeUploadError(w, http.StatusRequestEntityTooLarge, "Failed to parse multipart form: "+err.Error())
		return
	}

	initData := r.FormValue("initData")
	if initData == "" {
		writeUploadError(w, http.StatusUnauthorized, "initData is required")
		return
	}
	isValid, userData, err := validateInitData(initData, apiDeps.SecretKey)
	if err != nil || !isValid {
		log.Printf("UploadTelegramHandler: Invalid initData. Error: %v", err)
		writeUploadError(w, http.StatusUnauthorized, "invalid initData")
		return
	}

	kind := r.FormValue("kind")
	extraCaption := r.FormValue("caption")

	file, handler, err := r.FormFile("file")
	if err != nil {
		writeUploadError(w, http.StatusBadRequest, "Failed to get file from form: "+err.Error())
		return
	}
	defer file.Close()

	if handler.Size > constants.MAX_UPLOAD_SIZE {
		writeUploadError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("file too large: %d bytes", handler.Size))
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		log.Printf("UploadTelegramHandler: ошибка чтения файла '%s': %v", handler.Filename, err)
		writeUploadError(w, http.StatusInternalServerError, "could not read file")
		return
	}

	if telegram_api.Client == nil {
		writeUploadError(w, http.StatusServiceUnavailable, "telegram relay is not configured")
		return
	}

	// Канал-приемник из конфига; без него файл уходит самому пользователю.
	chatID := apiDeps.Config.TargetChatID
	if chatID == 0 {
		chatID = userData.ID
	}

	caption := formatters.FormatUploadCaption(kind, handler.Filename, extraCaption, userData.ID, userData.Username)
	contentType := handler.Header.Get("Content-Type")

	msg, err := telegram_api.Client.SendUpload(chatID, handler.Filename, contentType, data, caption)
	if err != nil {
		log.Printf("UploadTelegramHandler: ошибка отправки в Telegram: %v", err)
		writeUploadError(w, http.StatusBadGateway, err.Error())
		return
	}

	// Успешная отправка KYC-документа или билета помечает локальный флаг.
	if kind == constants.UPLOAD_KIND_KYC || kind == constants.UPLOAD_KIND_TICKET {
		db.SetTravelerKycRegistered(true)
	}

	log.Printf("UploadTelegramHandler: файл '%s' (%s) переслан в чат %d.", handler.Filename, kind, chatID)
	writeUploadOK(w, msg)
}

// --- Заказы ---

// GetOrders отдает проекцию "Мои заказы" с учетом query-параметров.
func GetOrders(w http.ResponseWriter, r *http.Request) {
	applyViewParams(apiDeps.MyOrders, r)
	writeJSONSuccess(w, "Orders retrieved", apiDeps.MyOrders.Snapshot())
}

// CreateUserOrder добавляет заказ. Дубликат маршрута и даты отклоняется.
func CreateUserOrder(w http.ResponseWriter, r *http.Request) {
	var candidate models.Order
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	created := db.AddOrder(candidate)
	if created == nil {
		writeJSONError(w, http.StatusConflict, "Order with the same route and date already exists")
		return
	}
	writeJSONSuccess(w, "Order created", created)
}

// GetOrderDetails отдает один заказ по ID.
func GetOrderDetails(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order := db.GetOrderByID(id)
	if order == nil {
		writeJSONError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSONSuccess(w, "Order retrieved", order)
}

// UpdateUserOrder вносит частичное обновление в заказ.
// Тело запроса - произвольный JSON-объект, ключи затирают поля записи.
func UpdateUserOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var patch map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if !db.UpdateOrder(id, patch) {
		writeJSONError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSONSuccess(w, "Order updated", db.GetOrderByID(id))
}

// DeleteUserOrder удаляет заказ по ID.
func DeleteUserOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !db.RemoveOrder(id) {
		writeJSONError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSONSuccess(w, "Order deleted", nil)
}

// ClearUserOrders опустошает репозиторий заказов.
func ClearUserOrders(w http.ResponseWriter, r *http.Request) {
	db.ClearOrders()
	writeJSONSuccess(w, "Orders cleared", nil)
}

// ExportOrdersHandler выгружает заказы в xlsx.
func ExportOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders := db.GetOrders()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Тип", "Откуда", "Куда", "Дата", "Статус", "Действие", "Описание", "Создан"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for row, o := range orders {
		values := []interface{}{
			o.ID, o.Type, o.From, o.To, o.DateISO,
			o.StatusText, o.Action, o.Description,
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="orders.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Printf("ExportOrdersHandler: ошибка записи xlsx: %v", err)
	}
}

// OrderQRHandler отдает PNG с QR-кодом сводки заказа для передачи с рук на руки.
func OrderQRHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order := db.GetOrderByID(id)
	if order == nil {
		writeJSONError(w, http.StatusNotFound, "Order not found")
		return
	}

	png, err := qrcode.Encode(formatters.FormatOrderSummary(*order), qrcode.Medium, 256)
	if err != nil {
		log.Printf("OrderQRHandler: ошибка генерации QR для заказа %s: %v", id, err)
		writeJSONError(w, http.StatusInternalServerError, "Could not generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}

// --- Объявления путешественников ---

// GetTravelerListings отдает объявления. Параметры origin/destination
// фильтруют список матчингом маршрута.
func GetTravelerListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Has("origin") || q.Has("destination") {
		query := models.RouteQuery{
			Origin:      q.Get("origin"),
			Destination: q.Get("destination"),
		}
		writeJSONSuccess(w, "Listings retrieved", views.ListingsForQuery(query))
		return
	}
	writeJSONSuccess(w, "Listings retrieved", db.GetTravelerListings())
}

// CreateTravelerListing добавляет объявление путешественника.
// Требует пройденного KYC; коллизия по маршруту и времени вытесняет старую запись.
func CreateTravelerListing(w http.ResponseWriter, r *http.Request) {
	if !db.IsTravelerKycRegistered() {
		writeJSONError(w, http.StatusForbidden, "Traveler KYC is not registered")
		return
	}

	var candidate models.TravelerListing
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	added := db.AddTravelerListing(candidate)
	writeJSONSuccess(w, "Listing created", added)
}

// --- Витрины рейсов и грузов ---

// GetRegisteredFlights отдает карточки рейсов, совпавших с маршрутом груза.
func GetRegisteredFlights(w http.ResponseWriter, r *http.Request) {
	applyViewParams(apiDeps.Flights, r)
	writeJSONSuccess(w, "Flights retrieved", apiDeps.Flights.Snapshot())
}

// GetRegisteredCargo отдает карточки грузов, совпавших с маршрутом путешественника.
func GetRegisteredCargo(w http.ResponseWriter, r *http.Request) {
	applyViewParams(apiDeps.Cargo, r)
	writeJSONSuccess(w, "Cargo retrieved", apiDeps.Cargo.Snapshot())
}

// --- Маршруты и кэш формы ---

// GetRoute отдает сохраненный маршрутный запрос вида {kind}.
func GetRoute(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	query, found := db.LoadRoute(kind)
	writeJSONSuccess(w, "Route retrieved", RouteStateResponse{Route: query, Found: found})
}

// SaveRouteHandler сохраняет маршрутный запрос вида {kind}.
// Представления, зависящие от маршрута, пересчитываются сразу.
func SaveRouteHandler(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")

	var query models.RouteQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if !db.SaveRoute(kind, query) {
		writeJSONError(w, http.StatusInternalServerError, "Could not save route")
		return
	}

	// Смена маршрута меняет выборку витрин, событий репозитории не шлют.
	apiDeps.Flights.Refresh()
	apiDeps.Cargo.Refresh()

	saved, _ := db.LoadRoute(kind)
	writeJSONSuccess(w, "Route saved", saved)
}

// ClearRouteHandler удаляет маршрутный запрос вида {kind}.
func ClearRouteHandler(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	db.ClearRoute(kind)
	apiDeps.Flights.Refresh()
	apiDeps.Cargo.Refresh()
	writeJSONSuccess(w, "Route cleared", nil)
}

// GetCargoForm отдает кэшированное состояние формы регистрации груза.
func GetCargoForm(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, "Cargo form retrieved", CargoFormState{
		Categories: db.LoadCargoCategories(),
		Weight:     db.LoadCargoWeight(),
		Value:      db.LoadCargoValue(),
	})
}

// SaveCargoForm сохраняет состояние формы регистрации груза.
func SaveCargoForm(w http.ResponseWriter, r *http.Request) {
	var form CargoFormState
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	db.SaveCargoCategories(form.Categories)
	db.SaveCargoWeight(form.Weight)
	db.SaveCargoValue(form.Value)
	writeJSONSuccess(w, "Cargo form saved", form)
}

// --- KYC ---

// GetKycState сообщает, помечен ли путешественник как прошедший KYC.
func GetKycState(w http.ResponseWriter, r *http.Request) {
	writeJSONSuccess(w, "KYC state retrieved", map[string]bool{
		"registered": db.IsTravelerKycRegistered(),
	})
}

// SetKycState выставляет флаг KYC вручную.
func SetKycState(w http.ResponseWriter, r *http.Request) {
	var req KycStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	db.SetTravelerKycRegistered(req.Registered)
	writeJSONSuccess(w, "KYC state updated", map[string]bool{"registered": req.Registered})
}
