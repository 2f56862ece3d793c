// Package proto holds the exchange's RPC messages, the gRPC codec they
// travel with and the VaccineExchange service descriptor.
//
// Messages encode themselves in the protobuf binary format with the field
// numbers of the exchange protocol. Getters are nil-safe.
package proto

import "google.golang.org/protobuf/encoding/protowire"

type Auth struct {
	Token string
}

func (x *Auth) GetToken() string {
	if x != nil {
		return x.Token
	}
	return ""
}

func (x *Auth) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.Token)
	return b
}

func (x *Auth) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.Token)
		}
		return 0, nil
	})
}

func (x *Auth) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *Auth) UnmarshalProto(b []byte) error {
	*x = Auth{}
	return x.merge(b)
}

type RegisterRequest struct{}

func (x *RegisterRequest) appendTo(b []byte) []byte { return b }

func (x *RegisterRequest) merge(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

func (x *RegisterRequest) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *RegisterRequest) UnmarshalProto(b []byte) error {
	*x = RegisterRequest{}
	return x.merge(b)
}

type RegisterResponse struct {
	UserId       string
	UserPassword string
}

func (x *RegisterResponse) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.UserId)
	b = appendString(b, 2, x.UserPassword)
	return b
}

func (x *RegisterResponse) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.UserId)
		case 2:
			return consumeString(typ, b, &x.UserPassword)
		}
		return 0, nil
	})
}

func (x *RegisterResponse) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *RegisterResponse) UnmarshalProto(b []byte) error {
	*x = RegisterResponse{}
	return x.merge(b)
}

type LoginRequest struct {
	UserId       string
	UserPassword string
}

func (x *LoginRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *LoginRequest) GetUserPassword() string {
	if x != nil {
		return x.UserPassword
	}
	return ""
}

func (x *LoginRequest) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.UserId)
	b = appendString(b, 2, x.UserPassword)
	return b
}

func (x *LoginRequest) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.UserId)
		case 2:
			return consumeString(typ, b, &x.UserPassword)
		}
		return 0, nil
	})
}

func (x *LoginRequest) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *LoginRequest) UnmarshalProto(b []byte) error {
	*x = LoginRequest{}
	return x.merge(b)
}

type LoginResponse struct {
	Auth *Auth
}

func (x *LoginResponse) GetAuth() *Auth {
	if x != nil {
		return x.Auth
	}
	return nil
}

func (x *LoginResponse) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Auth != nil {
		b = appendMessage(b, 1, x.Auth.appendTo(nil))
	}
	return b
}

func (x *LoginResponse) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Auth == nil {
				x.Auth = new(Auth)
			}
			return consumeMessage(typ, b, x.Auth.merge)
		}
		return 0, nil
	})
}

func (x *LoginResponse) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *LoginResponse) UnmarshalProto(b []byte) error {
	*x = LoginResponse{}
	return x.merge(b)
}

type PublicPrice struct {
	Price float64
}

func (x *PublicPrice) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendDouble(b, 1, x.Price)
	return b
}

func (x *PublicPrice) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeDouble(typ, b, &x.Price)
		}
		return 0, nil
	})
}

func (x *PublicPrice) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *PublicPrice) UnmarshalProto(b []byte) error {
	*x = PublicPrice{}
	return x.merge(b)
}

type CreateVaccineRequest struct {
	Auth         *Auth
	RnaInfo      string
	Name         string
	PrivatePrice float64
	PublicPrice  *PublicPrice
}

func (x *CreateVaccineRequest) GetAuth() *Auth {
	if x != nil {
		return x.Auth
	}
	return nil
}

func (x *CreateVaccineRequest) HasPublicPrice() bool {
	return x != nil && x.PublicPrice != nil
}

func (x *CreateVaccineRequest) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Auth != nil {
		b = appendMessage(b, 1, x.Auth.appendTo(nil))
	}
	b = appendString(b, 2, x.RnaInfo)
	b = appendString(b, 3, x.Name)
	b = appendDouble(b, 4, x.PrivatePrice)
	if x.PublicPrice != nil {
		b = appendMessage(b, 5, x.PublicPrice.appendTo(nil))
	}
	return b
}

func (x *CreateVaccineRequest) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Auth == nil {
				x.Auth = new(Auth)
			}
			return consumeMessage(typ, b, x.Auth.merge)
		case 2:
			return consumeString(typ, b, &x.RnaInfo)
		case 3:
			return consumeString(typ, b, &x.Name)
		case 4:
			return consumeDouble(typ, b, &x.PrivatePrice)
		case 5:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.PublicPrice == nil {
				x.PublicPrice = new(PublicPrice)
			}
			return consumeMessage(typ, b, x.PublicPrice.merge)
		}
		return 0, nil
	})
}

func (x *CreateVaccineRequest) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *CreateVaccineRequest) UnmarshalProto(b []byte) error {
	*x = CreateVaccineRequest{}
	return x.merge(b)
}

type VaccineInfo struct {
	RnaInfo  string
	Name     string
	SellerId string
}

func (x *VaccineInfo) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.RnaInfo)
	b = appendString(b, 2, x.Name)
	b = appendString(b, 3, x.SellerId)
	return b
}

func (x *VaccineInfo) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.RnaInfo)
		case 2:
			return consumeString(typ, b, &x.Name)
		case 3:
			return consumeString(typ, b, &x.SellerId)
		}
		return 0, nil
	})
}

func (x *VaccineInfo) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *VaccineInfo) UnmarshalProto(b []byte) error {
	*x = VaccineInfo{}
	return x.merge(b)
}

type SellInfo struct {
	Id    string
	Price float64
}

func (x *SellInfo) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.Id)
	b = appendDouble(b, 2, x.Price)
	return b
}

func (x *SellInfo) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.Id)
		case 2:
			return consumeDouble(typ, b, &x.Price)
		}
		return 0, nil
	})
}

func (x *SellInfo) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *SellInfo) UnmarshalProto(b []byte) error {
	*x = SellInfo{}
	return x.merge(b)
}

type Vaccine struct {
	Info    *VaccineInfo
	Private *SellInfo
	Public  *SellInfo
}

func (x *Vaccine) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Info != nil {
		b = appendMessage(b, 1, x.Info.appendTo(nil))
	}
	if x.Private != nil {
		b = appendMessage(b, 2, x.Private.appendTo(nil))
	}
	if x.Public != nil {
		b = appendMessage(b, 3, x.Public.appendTo(nil))
	}
	return b
}

func (x *Vaccine) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Info == nil {
				x.Info = new(VaccineInfo)
			}
			return consumeMessage(typ, b, x.Info.merge)
		case 2:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Private == nil {
				x.Private = new(SellInfo)
			}
			return consumeMessage(typ, b, x.Private.merge)
		case 3:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Public == nil {
				x.Public = new(SellInfo)
			}
			return consumeMessage(typ, b, x.Public.merge)
		}
		return 0, nil
	})
}

func (x *Vaccine) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *Vaccine) UnmarshalProto(b []byte) error {
	*x = Vaccine{}
	return x.merge(b)
}

type CreateVaccineResponse struct {
	Vaccine *Vaccine
}

func (x *CreateVaccineResponse) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Vaccine != nil {
		b = appendMessage(b, 1, x.Vaccine.appendTo(nil))
	}
	return b
}

func (x *CreateVaccineResponse) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Vaccine == nil {
				x.Vaccine = new(Vaccine)
			}
			return consumeMessage(typ, b, x.Vaccine.merge)
		}
		return 0, nil
	})
}

func (x *CreateVaccineResponse) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *CreateVaccineResponse) UnmarshalProto(b []byte) error {
	*x = CreateVaccineResponse{}
	return x.merge(b)
}

type BuyRequest struct {
	Auth    *Auth
	StockId string
}

func (x *BuyRequest) GetAuth() *Auth {
	if x != nil {
		return x.Auth
	}
	return nil
}

func (x *BuyRequest) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Auth != nil {
		b = appendMessage(b, 1, x.Auth.appendTo(nil))
	}
	b = appendString(b, 2, x.StockId)
	return b
}

func (x *BuyRequest) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Auth == nil {
				x.Auth = new(Auth)
			}
			return consumeMessage(typ, b, x.Auth.merge)
		case 2:
			return consumeString(typ, b, &x.StockId)
		}
		return 0, nil
	})
}

func (x *BuyRequest) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *BuyRequest) UnmarshalProto(b []byte) error {
	*x = BuyRequest{}
	return x.merge(b)
}

type BuyResponse struct {
	RnaInfo string
}

func (x *BuyResponse) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.RnaInfo)
	return b
}

func (x *BuyResponse) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.RnaInfo)
		}
		return 0, nil
	})
}

func (x *BuyResponse) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *BuyResponse) UnmarshalProto(b []byte) error {
	*x = BuyResponse{}
	return x.merge(b)
}

type BalanceRequest struct {
	Auth *Auth
}

func (x *BalanceRequest) GetAuth() *Auth {
	if x != nil {
		return x.Auth
	}
	return nil
}

func (x *BalanceRequest) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Auth != nil {
		b = appendMessage(b, 1, x.Auth.appendTo(nil))
	}
	return b
}

func (x *BalanceRequest) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Auth == nil {
				x.Auth = new(Auth)
			}
			return consumeMessage(typ, b, x.Auth.merge)
		}
		return 0, nil
	})
}

func (x *BalanceRequest) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *BalanceRequest) UnmarshalProto(b []byte) error {
	*x = BalanceRequest{}
	return x.merge(b)
}

type BalanceResponse struct {
	Balance float64
}

func (x *BalanceResponse) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendDouble(b, 1, x.Balance)
	return b
}

func (x *BalanceResponse) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeDouble(typ, b, &x.Balance)
		}
		return 0, nil
	})
}

func (x *BalanceResponse) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *BalanceResponse) UnmarshalProto(b []byte) error {
	*x = BalanceResponse{}
	return x.merge(b)
}

type PriceRequest struct {
	StockId string
}

func (x *PriceRequest) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.StockId)
	return b
}

func (x *PriceRequest) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.StockId)
		}
		return 0, nil
	})
}

func (x *PriceRequest) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *PriceRequest) UnmarshalProto(b []byte) error {
	*x = PriceRequest{}
	return x.merge(b)
}

type PriceResponse struct {
	Price float64
}

func (x *PriceResponse) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendDouble(b, 1, x.Price)
	return b
}

func (x *PriceResponse) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeDouble(typ, b, &x.Price)
		}
		return 0, nil
	})
}

func (x *PriceResponse) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *PriceResponse) UnmarshalProto(b []byte) error {
	*x = PriceResponse{}
	return x.merge(b)
}

type ListRequest struct{}

func (x *ListRequest) appendTo(b []byte) []byte { return b }

func (x *ListRequest) merge(b []byte) error {
	return consumeFields(b, func(protowire.Number, protowire.Type, []byte) (int, error) { return 0, nil })
}

func (x *ListRequest) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *ListRequest) UnmarshalProto(b []byte) error {
	*x = ListRequest{}
	return x.merge(b)
}

type ListVaccineInfo struct {
	Name    string
	StockId string
}

func (x *ListVaccineInfo) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	b = appendString(b, 1, x.Name)
	b = appendString(b, 2, x.StockId)
	return b
}

func (x *ListVaccineInfo) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			return consumeString(typ, b, &x.Name)
		case 2:
			return consumeString(typ, b, &x.StockId)
		}
		return 0, nil
	})
}

func (x *ListVaccineInfo) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *ListVaccineInfo) UnmarshalProto(b []byte) error {
	*x = ListVaccineInfo{}
	return x.merge(b)
}

type ListResponse struct {
	Vaccines []*ListVaccineInfo
}

func (x *ListResponse) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	for _, m := range x.Vaccines {
		b = appendMessage(b, 1, m.appendTo(nil))
	}
	return b
}

func (x *ListResponse) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if typ != protowire.BytesType {
				return 0, nil
			}
			m := new(ListVaccineInfo)
			x.Vaccines = append(x.Vaccines, m)
			return consumeMessage(typ, b, m.merge)
		}
		return 0, nil
	})
}

func (x *ListResponse) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *ListResponse) UnmarshalProto(b []byte) error {
	*x = ListResponse{}
	return x.merge(b)
}

type GetUserVaccineRequest struct {
	Auth *Auth
}

func (x *GetUserVaccineRequest) GetAuth() *Auth {
	if x != nil {
		return x.Auth
	}
	return nil
}

func (x *GetUserVaccineRequest) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Auth != nil {
		b = appendMessage(b, 1, x.Auth.appendTo(nil))
	}
	return b
}

func (x *GetUserVaccineRequest) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Auth == nil {
				x.Auth = new(Auth)
			}
			return consumeMessage(typ, b, x.Auth.merge)
		}
		return 0, nil
	})
}

func (x *GetUserVaccineRequest) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *GetUserVaccineRequest) UnmarshalProto(b []byte) error {
	*x = GetUserVaccineRequest{}
	return x.merge(b)
}

type GetUserVaccineResponse struct {
	Vaccine *Vaccine
}

func (x *GetUserVaccineResponse) appendTo(b []byte) []byte {
	if x == nil {
		return b
	}
	if x.Vaccine != nil {
		b = appendMessage(b, 1, x.Vaccine.appendTo(nil))
	}
	return b
}

func (x *GetUserVaccineResponse) merge(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case 1:
			if typ != protowire.BytesType {
				return 0, nil
			}
			if x.Vaccine == nil {
				x.Vaccine = new(Vaccine)
			}
			return consumeMessage(typ, b, x.Vaccine.merge)
		}
		return 0, nil
	})
}

func (x *GetUserVaccineResponse) MarshalProto() ([]byte, error) { return x.appendTo(nil), nil }

func (x *GetUserVaccineResponse) UnmarshalProto(b []byte) error {
	*x = GetUserVaccineResponse{}
	return x.merge(b)
}
