package commands

import (
	"context"
	"math/big"

	"voucher-ledger/internal/domain/event"
	"voucher-ledger/internal/domain/fee"
	"voucher-ledger/internal/domain/merch"
	"voucher-ledger/internal/usecase/shared"

	"github.com/ethereum/go-ethereum/common"
)

// merchCustody holds credited royalties: buyers pay into it and withdrawals
// pay out of it.
var merchCustody = common.Address{}

type OrderResult struct {
	ShirtIDs  []uint64
	Transfers fee.Plan
}

type StoreCommands interface {
	Whitelist(ctx context.Context, actor common.Address, addresses, owners []common.Address) error
	SetStatus(ctx context.Context, actor common.Address, addresses []common.Address, statuses []bool) error
	SetOwners(ctx context.Context, actor common.Address, addresses, owners []common.Address) error
	BuyShirts(ctx context.Context, actor common.Address, designs []merch.Design, paid *big.Int) (*OrderResult, error)
	Withdraw(ctx context.Context, actor common.Address) (*big.Int, error)
}

type storeCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewStoreCommands(uow shared.UnitOfWork) StoreCommands {
	return &storeCommandsImpl{uow: uow}
}

type listingEvent struct {
	Address string `json:"address"`
	Owner   string `json:"owner"`
	Active  bool   `json:"active"`
}

type shirtItem struct {
	NFT     string `json:"nft"`
	TokenID string `json:"token_id"`
}

type shirtEvent struct {
	ID    uint64      `json:"id"`
	Buyer string      `json:"buyer"`
	Price string      `json:"price"`
	Items []shirtItem `json:"items"`
}

type withdrawnEvent struct {
	Holder string `json:"holder"`
	Amount string `json:"amount"`
}

func (uc *storeCommandsImpl) Whitelist(ctx context.Context, actor common.Address, addresses, owners []common.Address) error {
	if err := merch.SameLength(len(addresses), len(owners)); err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireSettingsOwner(ctx, tx, actor); err != nil {
			return err
		}
		for i, addr := range addresses {
			l, err := merch.NewListing(addr, owners[i])
			if err != nil {
				return err
			}
			if err := uc.saveListing(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *storeCommandsImpl) SetStatus(ctx context.Context, actor common.Address, addresses []common.Address, statuses []bool) error {
	if err := merch.SameLength(len(addresses), len(statuses)); err != nil {
		return err
	}
	return uc.updateListings(ctx, actor, addresses, func(i int, l *merch.Listing) error {
		l.SetActive(statuses[i])
		return nil
	})
}

func (uc *storeCommandsImpl) SetOwners(ctx context.Context, actor common.Address, addresses, owners []common.Address) error {
	if err := merch.SameLength(len(addresses), len(owners)); err != nil {
		return err
	}
	return uc.updateListings(ctx, actor, addresses, func(i int, l *merch.Listing) error {
		return l.SetOwner(owners[i])
	})
}

func (uc *storeCommandsImpl) updateListings(ctx context.Context, actor common.Address, addresses []common.Address, mutate func(int, *merch.Listing) error) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireSettingsOwner(ctx, tx, actor); err != nil {
			return err
		}
		listings, err := tx.Merch().ListingsForUpdate(ctx, tx.DB(), addresses)
		if err != nil {
			return err
		}
		for i, addr := range addresses {
			l, ok := listings[addr]
			if !ok {
				return merch.ErrListingMissing
			}
			if err := mutate(i, l); err != nil {
				return err
			}
			if err := uc.saveListing(ctx, tx, l); err != nil {
				return err
			}
		}
		return nil
	})
}

func (uc *storeCommandsImpl) saveListing(ctx context.Context, tx shared.Tx, l *merch.Listing) error {
	if err := tx.Merch().SaveListing(ctx, tx.DB(), l); err != nil {
		return err
	}
	return emit(ctx, tx, event.New(event.ListingChanged, l.Address().Hex(), listingEvent{
		Address: l.Address().Hex(),
		Owner:   l.Owner().Hex(),
		Active:  l.Active(),
	}))
}

// BuyShirts charges len(designs) × shirtFee + shippingFee. Each shirt's
// royalty pool is credited to the owners of the listings it prints; the
// remainder and the shipping fee go to the fee recipient.
func (uc *storeCommandsImpl) BuyShirts(ctx context.Context, actor common.Address, designs []merch.Design, paid *big.Int) (*OrderResult, error) {
	var result *OrderResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		settings, err := tx.Settings().Get(ctx, tx.DB())
		if err != nil {
			return err
		}
		listings, err := tx.Merch().ListingsForUpdate(ctx, tx.DB(), merch.Contracts(designs))
		if err != nil {
			return err
		}
		if err := merch.Validate(designs, listings); err != nil {
			return err
		}

		pricing := merch.Pricing{
			ShirtFee:    settings.ShirtFee(),
			ShippingFee: settings.ShippingFee(),
			RoyaltyBps:  settings.ShirtRoyaltyBps(),
		}
		if err := fee.CheckPaid(paid, pricing.Estimate(len(designs))); err != nil {
			return err
		}

		balances := make(map[common.Address]*merch.Balance)
		var order []common.Address
		platform := settings.ShippingFee()
		credited := new(big.Int)
		ids := make([]uint64, 0, len(designs))

		for _, d := range designs {
			credits, share, err := pricing.Royalties(d, listings)
			if err != nil {
				return err
			}
			platform.Add(platform, share)
			for _, c := range credits {
				b, ok := balances[c.Holder]
				if !ok {
					b, err = tx.Merch().BalanceForUpdate(ctx, tx.DB(), c.Holder)
					if err != nil {
						return err
					}
					balances[c.Holder] = b
					order = append(order, c.Holder)
				}
				b.Credit(c.Amount)
				credited.Add(credited, c.Amount)
			}

			shirt := merch.NewShirt(0, actor, d, pricing.ShirtFee)
			id, err := tx.Merch().CreateShirt(ctx, tx.DB(), shirt)
			if err != nil {
				return err
			}
			ids = append(ids, id)
			if err := emit(ctx, tx, event.New(event.ShirtCreated, idKey(id), shirtPayload(id, actor, d, pricing.ShirtFee))); err != nil {
				return err
			}
		}

		for _, holder := range order {
			if err := tx.Merch().SaveBalance(ctx, tx.DB(), balances[holder]); err != nil {
				return err
			}
		}

		var plan fee.Plan
		plan = plan.Add(fee.Transfer{
			Payer:  actor,
			Payee:  settings.FeeRecipient(),
			Amount: platform,
			Kind:   fee.PayoutMerch,
		})
		plan = plan.Add(fee.Transfer{
			Payer:  actor,
			Payee:  merchCustody,
			Amount: credited,
			Kind:   fee.PayoutMerch,
		})
		if err := book(ctx, tx, "shirts:"+idKey(ids[0]), plan); err != nil {
			return err
		}
		result = &OrderResult{ShirtIDs: ids, Transfers: plan}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (uc *storeCommandsImpl) Withdraw(ctx context.Context, actor common.Address) (*big.Int, error) {
	var amount *big.Int
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Merch().BalanceForUpdate(ctx, tx.DB(), actor)
		if err != nil {
			return err
		}
		amount, err = b.Withdraw()
		if err != nil {
			return err
		}
		if err := tx.Merch().SaveBalance(ctx, tx.DB(), b); err != nil {
			return err
		}

		var plan fee.Plan
		plan = plan.Add(fee.Transfer{
			Payer:  merchCustody,
			Payee:  actor,
			Amount: amount,
			Kind:   fee.PayoutWithdrawal,
		})
		if err := book(ctx, tx, "withdrawal:"+actor.Hex(), plan); err != nil {
			return err
		}
		return emit(ctx, tx, event.New(event.BalanceWithdrawn, actor.Hex(), withdrawnEvent{
			Holder: actor.Hex(),
			Amount: amount.String(),
		}))
	})
	if err != nil {
		return nil, err
	}
	return amount, nil
}

func shirtPayload(id uint64, buyer common.Address, d merch.Design, price *big.Int) shirtEvent {
	items := make([]shirtItem, len(d))
	for i, it := range d {
		items[i] = shirtItem{NFT: it.NFT.Hex(), TokenID: it.TokenID.String()}
	}
	return shirtEvent{ID: id, Buyer: buyer.Hex(), Price: price.String(), Items: items}
}

func requireSettingsOwner(ctx context.Context, tx shared.Tx, actor common.Address) error {
	settings, err := tx.Settings().Get(ctx, tx.DB())
	if err != nil {
		return err
	}
	return settings.RequireOwner(actor)
}
