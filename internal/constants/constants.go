package constants

// Типы заказов в маркетплейсе.
// Семантика: кто создал запись / что она представляет.
// Order types in the marketplace.
const (
	ORDER_TYPE_SENDER   = "sender"   // отправитель: просит перевезти груз / sender: asks to carry cargo
	ORDER_TYPE_CARRIER  = "carrier"  // перевозчик: предлагает свободное место / carrier: offers spare capacity
	ORDER_TYPE_TRAVELER = "traveler" // путешественник: то же, что carrier, но из потока рейсов
	ORDER_TYPE_CARGO    = "cargo"    // груз, добавленный из каталога зарегистрированных грузов
	ORDER_TYPE_FLIGHT   = "flight"   // эфемерная проекция карточки рейса; репозиторий таких записей не создает
)

// Ключи персистентного хранилища (аналог localStorage браузера).
// Значения ключей должны совпадать с ключами мини-аппа один в один.
const (
	KEY_MY_ORDERS         = "my_orders"
	KEY_TRAVELER_LISTINGS = "traveler_listings"
	KEY_CARGO_ROUTE       = "cargoRoute"
	KEY_TRAVELER_ROUTE    = "travelerRoute"
	KEY_CARGO_CATEGORIES  = "cargoCategories"
	KEY_CARGO_WEIGHT      = "cargoWeight"
	KEY_CARGO_VALUE       = "cargoValue"
)

// Сессионные ключи (аналог sessionStorage, не переживают перезапуск).
const (
	SESSION_KEY_CARGO_ROUTE    = "currentCargoRoute"
	SESSION_KEY_TRAVELER_ROUTE = "currentTravelerRoute"
)

// Ключ флага KYC и устаревшие ключи, которые ранние версии мини-аппа
// писали под разными именами. Чтение обязано проверять все.
const KEY_KYC_REGISTERED = "carrytomeKycRegistered"

var LegacyKycKeys = []string{
	KEY_KYC_REGISTERED,
	"kycRegistered",
	"kyc_verified",
	"travelerKycRegistered",
	"traveler_kyc_registered",
}

// Имена событий шины. cart-updated и orders-updated дублируют друг друга:
// исторически подписчики слушают оба имени, поэтому обе нотификации
// публикуются при каждой мутации репозитория заказов.
const (
	EVENT_CART_UPDATED              = "cart-updated"
	EVENT_ORDERS_UPDATED            = "orders-updated"
	EVENT_TRAVELER_LISTINGS_UPDATED = "traveler-listings-updated"
)

// Статусы заказов. Только для отображения, конечного автомата состояний нет.
// Order statuses. Display-only, there is no enforced state machine.
const (
	STATUS_PENDING_TEXT   = "در انتظار تایید" // в ожидании подтверждения
	STATUS_AVAILABLE_TEXT = "در دسترس"        // доступен

	STATUS_COLOR_AMBER   = "amber"
	STATUS_COLOR_EMERALD = "emerald"
)

// Подписи действий для карточек заказов.
const (
	ACTION_CARRY_CARGO    = "حمل بار"            // перевозка груза (carrier/traveler)
	ACTION_ENTRUST_PARCEL = "سپردن مرسوله"       // передача посылки (sender)
	ACTION_ADD_TO_ORDERS  = "افزودن به سفارش‌ها" // добавление из каталога (cargo)
)

// Значения по умолчанию для полей заказа, отсутствующих в кандидате.
const (
	DEFAULT_ORDER_FROM = "تهران (IKA)"
	DEFAULT_ORDER_TO   = "دبی (DXB)"
	DEFAULT_ORDER_ITEM = "مرسوله"
)

// Значения по умолчанию для объявлений путешественников.
// Чисто витринные константы без бизнес-смысла; репозиторий подставляет их
// как есть, не интерпретируя.
const (
	DEFAULT_LISTING_CAPACITY_LABEL = "فضای کافی"
	DEFAULT_LISTING_PROFILE_IMAGE  = "asset/images/logo.jpg"
	DEFAULT_LISTING_RATING         = 4.8
	DEFAULT_LISTING_DELIVERIES     = 0
	DEFAULT_LISTING_VERIFIED       = true
)

// Виды маршрутных запросов.
const (
	ROUTE_KIND_CARGO    = "cargo"
	ROUTE_KIND_TRAVELER = "traveler"
)

// Состояние представлений (фильтр/сортировка).
const (
	FILTER_ALL  = "all"
	SORT_NEWEST = "newest"
	SORT_OLDEST = "oldest"
)

// Ключи представлений для менеджера сессий.
const (
	VIEW_MY_ORDERS          = "my-order"
	VIEW_REGISTERED_FLIGHTS = "registered-flight"
	VIEW_REGISTERED_CARGO   = "registered-cargo"
)

// Виды загрузок через релей. kyc и ticket после успешной отправки
// помечают локальный флаг KYC.
const (
	UPLOAD_KIND_KYC    = "kyc"
	UPLOAD_KIND_TICKET = "ticket"
)

// Лимит размера файла для релея, как у исходного прокси (15 МБ).
const MAX_UPLOAD_SIZE = 15 * 1024 * 1024
