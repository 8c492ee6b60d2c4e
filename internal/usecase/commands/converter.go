package commands

import (
	domaffiliate "sdi-showcase/internal/domain/affiliate"
	domclient "sdi-showcase/internal/domain/client"
	domlisting "sdi-showcase/internal/domain/listing"
	"sdi-showcase/internal/usecase/readmodel"
)

func toListingRM(l *domlisting.Listing) readmodel.ListingRM {
	images := make([]readmodel.ImageRM, 0, len(l.Images()))
	for _, img := range l.Images() {
		images = append(images, readmodel.ImageRM{Name: img.Name(), URL: img.DisplayHandle()})
	}
	return readmodel.ListingRM{
		ID:          l.ID(),
		Title:       l.Title().String(),
		Price:       l.Price().String(),
		Description: l.Description().String(),
		Images:      images,
		VideoURL:    l.VideoURL().String(),
		CreatedAt:   l.CreatedAt(),
	}
}

func toAffiliateRM(a *domaffiliate.Affiliate) readmodel.AffiliateRM {
	return readmodel.AffiliateRM{
		ID:         a.ID(),
		Name:       a.Name().String(),
		Email:      a.Email().Value(),
		Commission: a.Commission().Percent(),
		Code:       a.Code().String(),
		CreatedAt:  a.CreatedAt(),
	}
}

func toClientRM(c *domclient.Client) readmodel.ClientRM {
	return readmodel.ClientRM{
		ID:           c.ID(),
		Name:         c.Name().String(),
		Email:        c.Email().Value(),
		Budget:       c.Budget().String(),
		RegisteredAt: c.RegisteredAt(),
	}
}

func fromImageRMs(images []readmodel.ImageRM) ([]domlisting.Image, error) {
	out := make([]domlisting.Image, 0, len(images))
	for _, img := range images {
		i, err := domlisting.NewImage(img.Name, img.URL)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}
